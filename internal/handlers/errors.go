package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/twitter-lite/internal/services"
)

// respondError отображает доменную таксономию ошибок на HTTP статусы:
// NotFound -> 404, InvalidOperation/Conflict -> 400, Forbidden -> 403,
// остальное (включая Unavailable) -> 500
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidOperation), errors.Is(err, services.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
