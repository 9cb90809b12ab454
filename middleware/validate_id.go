package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Donadams50/TechTestMarch25/utils"
)

// ValidateID rejects malformed ObjectID path parameters before any store
// access. Handlers behind it may assume the id is well formed; whether it
// exists is a separate check.
func ValidateID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, err := primitive.ObjectIDFromHex(ctx.Param("id")); err != nil {
			_ = ctx.Error(utils.NewAPIError(http.StatusBadRequest, "Invalid ID format"))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
