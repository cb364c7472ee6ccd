package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

// writeError translates usecase failures into the wire shape. Field
// violations keep their per-field detail; everything else collapses to
// a code the client can branch on.
func writeError(c *gin.Context, err error) {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login_required"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, usecase.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate_request"})
	case errors.Is(err, usecase.ErrAmountMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_mismatch"})
	case errors.Is(err, usecase.ErrCancelNotAllowed):
		c.JSON(http.StatusConflict, gin.H{"error": "cancel_not_allowed"})
	case errors.Is(err, usecase.ErrOrderCreationFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order_creation_failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
