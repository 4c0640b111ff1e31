package handlers

import (
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
	errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
)

// SettingsHandler handles the single settings document.
type SettingsHandler struct {
	usecase  usecase.ISettingsUseCase
	quotes   usecase.IQuoteUseCase
	dispatch usecase.IDispatchUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase, quotes usecase.IQuoteUseCase, dispatch usecase.IDispatchUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc, quotes: quotes, dispatch: dispatch}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

// UpdateSettings replaces the settings aggregate. Existing quotes are not
// re-rendered; new settings only affect future compilations. Auto-send
// eligibility of pending drafts is re-evaluated against the new settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Update(c.Request.Context(), payload.ToSettings())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.reevaluateDrafts(c)

	c.JSON(http.StatusOK, response.FromSettings(s))
}

// reevaluateDrafts re-runs the auto-send eligibility check for every draft
// quote. Failures only log; the settings write has already succeeded.
func (h *SettingsHandler) reevaluateDrafts(c *gin.Context) {
	quotes, err := h.quotes.List(c.Request.Context())
	if err != nil {
		log.Printf("[settings][handler] draft re-evaluation skipped err=%v", err)
		return
	}
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusDraft {
			continue
		}
		if _, err := h.dispatch.EvaluateAutoSend(c.Request.Context(), q.ID); err != nil {
			log.Printf("[settings][handler] auto-send evaluation failed quote_id=%s err=%v", q.ID, err)
		}
	}
}
