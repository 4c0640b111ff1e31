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
	errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price payload", http.StatusBadRequest)
)

// PriceHandler handles catalog maintenance requests.
type PriceHandler struct {
	usecase usecase.IPriceUseCase
}

func NewPriceHandler(uc usecase.IPriceUseCase) *PriceHandler {
	return &PriceHandler{usecase: uc}
}

func (h *PriceHandler) ListPrices(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPriceItems(items))
}

// SavePrice upserts a catalog entry. POST without an id inserts, a body
// with an id updates in place.
func (h *PriceHandler) SavePrice(c *gin.Context) {
	var payload request.PriceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricePayload.HTTPStatus, errInvalidPricePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Save(c.Request.Context(), payload.ToPriceItem())
	if err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceItem(item))
}

func (h *PriceHandler) DeletePrice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("price_id")); err != nil {
		appErr := mapPriceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPriceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPriceItem), errors.Is(err, usecase.ErrInvalidPriceItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
