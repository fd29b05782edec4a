package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/campus_market/internal/remote"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/Gunvolt24/campus_market/pkg/validate"
	"github.com/gin-gonic/gin"
)

// writeError — единая точка маппинга ошибок слоя в HTTP-статусы.
// Валидация — 400, блокировка оформления — 409, транзиентные сбои
// бэкендов — 502 с признаком retryable для баннера повтора.
func (h *Handler) writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, validate.ErrInvalidAccountNumber),
		errors.Is(err, validate.ErrInvalidBankCode),
		errors.Is(err, validate.ErrInvalidQuantity),
		errors.Is(err, validate.ErrEmptyProductRef),
		errors.Is(err, validate.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, usecase.ErrCartNeedsFixing), errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, remote.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})

	case errors.Is(err, remote.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})

	case errors.Is(err, context.Canceled):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "request cancelled"})

	case remote.IsTransient(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable", "retryable": true})

	default:
		h.log.Errorf(ctx, "unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
