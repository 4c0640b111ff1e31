package handlers

import (
	"errors"
	"log"
	"net/http"

	request "veggiequote/internal/adapter/http/dto/request"
	response "veggiequote/internal/adapter/http/dto/response"
	"veggiequote/internal/domain/entities"
	"veggiequote/internal/usecase"
	"veggiequote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote compilation and history.
//
// Compile and message edits also kick the auto-send evaluation, so the
// response carries the resulting automated-send state next to the quote.
type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	dispatch usecase.IDispatchUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, dispatch usecase.IDispatchUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, dispatch: dispatch}
}

// CompileQuote prices an already-recognized order and persists the draft.
func (h *QuoteHandler) CompileQuote(c *gin.Context) {
	var payload request.CompileQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CompileFromParsedOrder(c.Request.Context(), payload.ToParsedOrder())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, h.withAutoSend(c, quote))
}

// ScanQuote recognizes a photographed order list and compiles it.
func (h *QuoteHandler) ScanQuote(c *gin.Context) {
	var payload request.ScanQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CompileFromImage(c.Request.Context(), payload.ImageBase64, payload.MimeType)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, h.withAutoSend(c, quote))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateMessage edits a draft's outgoing text and phone, then re-runs the
// auto-send evaluation against the updated quote.
func (h *QuoteHandler) UpdateMessage(c *gin.Context) {
	var payload request.UpdateMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateMessage(c.Request.Context(), c.Param("quote_id"), payload.RawText, payload.CustomerPhoneNumber)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, h.withAutoSend(c, quote))
}

func (h *QuoteHandler) ConfirmQuote(c *gin.Context) {
	quote, err := h.usecase.Confirm(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// withAutoSend evaluates the automated send for a freshly written quote.
// Evaluation failures never fail the request; the quote is already stored.
func (h *QuoteHandler) withAutoSend(c *gin.Context, quote entities.Quote) response.QuoteWithAutoSendResponse {
	out := response.QuoteWithAutoSendResponse{Quote: response.FromQuote(quote)}

	snap, err := h.dispatch.EvaluateAutoSend(c.Request.Context(), quote.ID)
	if err != nil {
		log.Printf("[quote][handler] auto-send evaluation failed quote_id=%s err=%v", quote.ID, err)
		return out
	}
	resp := response.FromAutoSendSnapshot(snap)
	out.AutoSend = &resp
	return out
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotDraft):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_DRAFT", "Only draft quotes can be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotConfirmable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_CONFIRMABLE", "Only quotes sent via API can be confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrRecognizerNotAvailable):
		return pkg.NewDomainErrorSimple("RECOGNIZER_UNAVAILABLE", "Order recognition is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
