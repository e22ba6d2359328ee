package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mlaranja/fuelpulse/internal/domain/dto"
	"github.com/mlaranja/fuelpulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context (via
// c.Error) into a single JSON error response, if no response was
// written by the handler itself.
//
// Handlers normally respond directly; this is the safety net for
// errors that bubble up through c.Error without an explicit status.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
