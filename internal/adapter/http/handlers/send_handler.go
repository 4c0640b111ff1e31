package handlers

import (
	"errors"
	"net/http"

	request "veggiequote/internal/adapter/http/dto/request"
	response "veggiequote/internal/adapter/http/dto/response"
	"veggiequote/internal/usecase"
	"veggiequote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSendPayload = pkg.NewDomainErrorSimple("INVALID_SEND_INPUT", "Invalid send payload", http.StatusBadRequest)
)

// SendHandler handles dispatch requests: explicit sends plus the automated
// send lifecycle (evaluate, poll, cancel).
type SendHandler struct {
	dispatch usecase.IDispatchUseCase
}

func NewSendHandler(dispatch usecase.IDispatchUseCase) *SendHandler {
	return &SendHandler{dispatch: dispatch}
}

// SendQuote performs a user-initiated send through the chosen channel.
func (h *SendHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSendPayload.HTTPStatus, errInvalidSendPayload.ToHTTPError())
		return
	}

	result, err := h.dispatch.ExplicitSend(c.Request.Context(), c.Param("quote_id"), payload.ResolveChannel())
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExplicitSendResult(result))
}

// EvaluateAutoSend re-runs the eligibility check for a quote.
func (h *SendHandler) EvaluateAutoSend(c *gin.Context) {
	snap, err := h.dispatch.EvaluateAutoSend(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAutoSendSnapshot(snap))
}

// CancelAutoSend stops a pending automated send for good.
func (h *SendHandler) CancelAutoSend(c *gin.Context) {
	snap, err := h.dispatch.CancelAutoSend(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAutoSendSnapshot(snap))
}

// GetAutoSendState returns the current orchestrator snapshot for polling.
func (h *SendHandler) GetAutoSendState(c *gin.Context) {
	snap, err := h.dispatch.AutoSendState(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAutoSendSnapshot(snap))
}

func mapDispatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidChannel):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSendInProgress):
		return pkg.NewDomainErrorSimple("SEND_IN_PROGRESS", "A send is already in progress for this quote", http.StatusConflict)
	default:
		// Gateway failures surface verbatim so the vendor sees what the
		// provider said.
		return pkg.NewDomainError("SEND_FAILED", err.Error(), err, http.StatusBadGateway)
	}
}
