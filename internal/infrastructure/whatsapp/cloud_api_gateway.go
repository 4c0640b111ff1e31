package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase/interfaces"
	"veggiequote/pkg/phone"
)

var ErrGatewayNotConfigured = errors.New("whatsapp api is not configured")

const (
	defaultGraphBaseURL = "https://graph.facebook.com/v17.0"
	genericSendFailure  = "Failed to send message via API"
)

// CloudAPIGateway sends text messages through the WhatsApp Cloud API
// (Graph API). There is no official Go SDK for it, so this speaks the wire
// format directly.
type CloudAPIGateway struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IMessageGateway = (*CloudAPIGateway)(nil)

func NewCloudAPIGateway() *CloudAPIGateway {
	return &CloudAPIGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultGraphBaseURL,
	}
}

// NewCloudAPIGatewayWithBaseURL exists for tests pointed at a local server.
func NewCloudAPIGatewayWithBaseURL(baseURL string, client *http.Client) *CloudAPIGateway {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &CloudAPIGateway{httpClient: client, baseURL: baseURL}
}

type textMessageRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	Body string `json:"body"`
}

type graphErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Title   string `json:"title"`
	} `json:"error"`
}

// SendText performs exactly one delivery attempt. Non-2xx responses surface
// the provider's error.message or error.title verbatim; transport and parse
// failures surface a generic message. No retries.
func (g *CloudAPIGateway) SendText(ctx context.Context, cfg entities.APIConfig, toPhone, body string) error {
	if !cfg.Enabled || cfg.AccessToken == "" || cfg.PhoneNumberID == "" {
		log.Printf("[whatsapp][gateway] send rejected: gateway not configured")
		return ErrGatewayNotConfigured
	}

	normalized, err := phone.Normalize(toPhone)
	if err != nil {
		log.Printf("[whatsapp][gateway] send rejected: %v", err)
		return err
	}

	payload, err := json.Marshal(textMessageRequest{
		MessagingProduct: "whatsapp",
		To:               normalized,
		Type:             "text",
		Text:             textPayload{Body: body},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", g.baseURL, cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[whatsapp][gateway] send start to=%s body_len=%d", normalized, len(body))
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[whatsapp][gateway] transport failure err=%v", err)
		return errors.New(genericSendFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("[whatsapp][gateway] send success to=%s status=%d", normalized, resp.StatusCode)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[whatsapp][gateway] send failed status=%d (body unreadable)", resp.StatusCode)
		return errors.New(genericSendFailure)
	}

	var graphErr graphErrorResponse
	if err := json.Unmarshal(raw, &graphErr); err == nil {
		if graphErr.Error.Message != "" {
			log.Printf("[whatsapp][gateway] send failed status=%d err=%s", resp.StatusCode, graphErr.Error.Message)
			return errors.New(graphErr.Error.Message)
		}
		if graphErr.Error.Title != "" {
			log.Printf("[whatsapp][gateway] send failed status=%d err=%s", resp.StatusCode, graphErr.Error.Title)
			return errors.New(graphErr.Error.Title)
		}
	}

	log.Printf("[whatsapp][gateway] send failed status=%d", resp.StatusCode)
	return errors.New(genericSendFailure)
}
