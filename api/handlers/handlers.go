package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"la-blog/api/trace"
	"la-blog/config"
	"la-blog/dto"
	"la-blog/internal/logger"
	"la-blog/services"
)

// respondError converts service-layer failures into the three response
// shapes of the API: 404 not-found, 400 validation, 500 everything else.
// Unexpected errors keep their detail in development only.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Blog post not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "Validation Error",
			Errors:  vErr.Errors,
		})
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"error":      err.Error(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
		message := "Internal server error"
		if !config.IsProduction() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: message})
	}
}
