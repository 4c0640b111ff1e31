package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"veggiequote/internal/adapter/http/handlers/mocks"
	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CompileQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.POST("/v1/quotes", h.CompileQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty order compiles to an empty quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.POST("/v1/quotes", h.CompileQuote)

		uc.EXPECT().CompileFromParsedOrder(gomock.Any(), entities.ParsedOrder{Items: []entities.ParsedOrderLine{}}).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)
		dispatch.EXPECT().EvaluateAutoSend(gomock.Any(), "q-1").Return(usecase.AutoSendSnapshot{QuoteID: "q-1", State: usecase.AutoSendIdle}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("success includes auto send snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.POST("/v1/quotes", h.CompileQuote)

		quote := entities.Quote{ID: "q-1", Timestamp: time.Now().UTC(), Status: entities.QuoteStatusDraft, Total: 80, RawText: "text"}
		uc.EXPECT().CompileFromParsedOrder(gomock.Any(), gomock.Any()).Return(quote, nil)
		dispatch.EXPECT().EvaluateAutoSend(gomock.Any(), "q-1").Return(usecase.AutoSendSnapshot{QuoteID: "q-1", State: usecase.AutoSendCountdown, CountdownRemaining: 2}, nil)

		body := `{"items":[{"original_name":"Tomato","quantity":2,"unit":"kg"}],"customer_phone_number":"9876543210"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp struct {
			Quote struct {
				ID string `json:"id"`
			} `json:"quote"`
			AutoSend *struct {
				State              string `json:"state"`
				CountdownRemaining int    `json:"countdown_remaining"`
			} `json:"auto_send"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Quote.ID != "q-1" {
			t.Fatalf("unexpected quote id: %q", resp.Quote.ID)
		}
		if resp.AutoSend == nil || resp.AutoSend.State != "countdown" || resp.AutoSend.CountdownRemaining != 2 {
			t.Fatalf("unexpected auto send: %+v", resp.AutoSend)
		}
	})

	t.Run("auto send failure does not fail the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.POST("/v1/quotes", h.CompileQuote)

		uc.EXPECT().CompileFromParsedOrder(gomock.Any(), gomock.Any()).Return(entities.Quote{ID: "q-1"}, nil)
		dispatch.EXPECT().EvaluateAutoSend(gomock.Any(), "q-1").Return(usecase.AutoSendSnapshot{}, errors.New("db"))

		body := `{"items":[{"original_name":"Tomato","quantity":2,"unit":"kg"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ScanQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recognizer unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.POST("/v1/quotes/scan", h.ScanQuote)

		uc.EXPECT().CompileFromImage(gomock.Any(), "aW1n", "image/jpeg").Return(entities.Quote{}, usecase.ErrRecognizerNotAvailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/scan", bytes.NewBufferString(`{"image_base64":"aW1n","mime_type":"image/jpeg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.POST("/v1/quotes/scan", h.ScanQuote)

		uc.EXPECT().CompileFromImage(gomock.Any(), "aW1n", "image/jpeg").Return(entities.Quote{ID: "q-1"}, nil)
		dispatch.EXPECT().EvaluateAutoSend(gomock.Any(), "q-1").Return(usecase.AutoSendSnapshot{QuoteID: "q-1", State: usecase.AutoSendIdle}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/scan", bytes.NewBufferString(`{"image_base64":"aW1n","mime_type":"image/jpeg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/message", h.UpdateMessage)

		uc.EXPECT().UpdateMessage(gomock.Any(), "q-1", "text", "").Return(entities.Quote{}, usecase.ErrQuoteNotDraft)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/message", bytes.NewBufferString(`{"raw_text":"text"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success re-evaluates auto send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/message", h.UpdateMessage)

		uc.EXPECT().UpdateMessage(gomock.Any(), "q-1", "text", "9876543210").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)
		dispatch.EXPECT().EvaluateAutoSend(gomock.Any(), "q-1").Return(usecase.AutoSendSnapshot{QuoteID: "q-1", State: usecase.AutoSendIdle}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/message", bytes.NewBufferString(`{"raw_text":"text","customer_phone_number":"9876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ConfirmQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not confirmable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/confirm", h.ConfirmQuote)

		uc.EXPECT().Confirm(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotConfirmable)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		dispatch := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewQuoteHandler(uc, dispatch)

		r := gin.New()
		r.PATCH("/v1/quotes/:quote_id/confirm", h.ConfirmQuote)

		uc.EXPECT().Confirm(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
