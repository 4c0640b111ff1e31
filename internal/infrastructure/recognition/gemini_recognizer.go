package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"
)

var ErrRecognizerNotConfigured = errors.New("missing GEMINI_API_KEY")

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel          = "gemini-2.5-flash"
)

// GeminiRecognizer turns an order photo into a structured order via the
// Gemini generateContent REST endpoint. The response is JSON-schema
// constrained so the parsed order shape is stable.
type GeminiRecognizer struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ interfaces.IOrderRecognizer = (*GeminiRecognizer)(nil)

func NewGeminiRecognizer(apiKey string) (*GeminiRecognizer, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[recognition][gateway] missing GEMINI_API_KEY")
		return nil, ErrRecognizerNotConfigured
	}
	return &GeminiRecognizer{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultGeminiBaseURL,
		apiKey:     apiKey,
	}, nil
}

// NewGeminiRecognizerWithBaseURL exists for tests pointed at a local server.
func NewGeminiRecognizerWithBaseURL(baseURL, apiKey string, client *http.Client) *GeminiRecognizer {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &GeminiRecognizer{httpClient: client, baseURL: baseURL, apiKey: apiKey}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// parsedOrderSchema constrains the model output to the ParsedOrder shape.
var parsedOrderSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "items": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "originalName": {"type": "STRING", "description": "Name as recognized or mapped"},
          "quantity": {"type": "NUMBER", "description": "Numeric quantity"},
          "unit": {"type": "STRING", "description": "kg, g, pc, bunch, or dozen"}
        },
        "required": ["originalName", "quantity", "unit"]
      }
    },
    "customerName": {"type": "STRING", "description": "Customer name if found, else empty string"},
    "customerPhoneNumber": {"type": "STRING", "description": "Customer phone if found, else empty string"}
  },
  "required": ["items"]
}`)

// parsedOrderJSON matches the field names the prompt asks the model for.
type parsedOrderJSON struct {
	Items []struct {
		OriginalName string  `json:"originalName"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	} `json:"items"`
	CustomerName        string `json:"customerName"`
	CustomerPhoneNumber string `json:"customerPhoneNumber"`
}

func recognitionPrompt(knownNames []string) string {
	return fmt.Sprintf(`Analyze this image of a vegetable list (handwritten or printed).

Tasks:
1. Extract the items and their quantities.
2. IDENTIFY CUSTOMER DETAILS: Look for a Name and a Phone Number at the top or bottom.
   - Phone numbers are often 10 digits, sometimes with 'Mob', 'Ph', or just digits.
   - Capture the phone number exactly as written.
3. MAP TO INVENTORY: Map extracted items to this list: [%s].
   - If no match found, use the text from the image.

Normalize units to: 'kg', 'g', 'pc', 'bunch', 'dozen'.
Default to 1 if quantity is missing.

Return a JSON object with 'items', 'customerName', and 'customerPhoneNumber'.
If name or phone is not found, return an empty string for those fields.`, strings.Join(knownNames, ", "))
}

// RecognizeOrder sends the image and catalog names to the model and decodes
// the structured reply. Empty item lists and missing customer fields are
// valid results, not errors.
func (r *GeminiRecognizer) RecognizeOrder(ctx context.Context, imageBase64, mimeType string, knownNames []string) (entities.ParsedOrder, error) {
	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: imageBase64}},
				{Text: recognitionPrompt(knownNames)},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   parsedOrderSchema,
		},
	})
	if err != nil {
		return entities.ParsedOrder{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", r.baseURL, geminiModel, r.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return entities.ParsedOrder{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[recognition][gateway] recognize start image_len=%d known_names=%d", len(imageBase64), len(knownNames))
	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("[recognition][gateway] transport failure err=%v", err)
		return entities.ParsedOrder{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.ParsedOrder{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[recognition][gateway] recognize failed status=%d", resp.StatusCode)
		return entities.ParsedOrder{}, fmt.Errorf("recognition service returned status %d", resp.StatusCode)
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.ParsedOrder{}, err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		log.Printf("[recognition][gateway] empty response; treating as empty order")
		return entities.ParsedOrder{}, nil
	}

	var parsed parsedOrderJSON
	if err := json.Unmarshal([]byte(out.Candidates[0].Content.Parts[0].Text), &parsed); err != nil {
		return entities.ParsedOrder{}, err
	}

	order := entities.ParsedOrder{
		CustomerName:        strings.TrimSpace(parsed.CustomerName),
		CustomerPhoneNumber: strings.TrimSpace(parsed.CustomerPhoneNumber),
	}
	for _, it := range parsed.Items {
		order.Items = append(order.Items, entities.ParsedOrderLine{
			OriginalName: it.OriginalName,
			Quantity:     it.Quantity,
			Unit:         entities.Unit(it.Unit),
		})
	}
	log.Printf("[recognition][gateway] recognize success items=%d", len(order.Items))
	return order, nil
}
