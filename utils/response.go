package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform error envelope: {"error":{"status","message"}}.
// Every failure path renders through it, whichever component raised the error.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// WriteError writes the shared error envelope with the given status.
func WriteError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": ErrorBody{Status: status, Message: message}})
}
