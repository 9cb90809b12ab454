package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Donadams50/TechTestMarch25/utils"
)

// ErrorHandler is the single place errors become responses. Handlers raise
// failures with ctx.Error + abort; this middleware renders the last one as
// {"error":{"status","message"}}. Errors without a status render as a generic
// 500 so store internals never leak to clients.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 {
			return
		}
		err := ctx.Errors.Last().Err

		status := http.StatusInternalServerError
		message := "Something went wrong"
		var apiErr *utils.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.Status
			message = apiErr.Message
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.Int("status", status),
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path),
				zap.Error(err),
			)
		}
		utils.WriteError(ctx, status, message)
	}
}
