package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"home-inspection-assistant/internal/models"
)

// RequireContentType rejects requests whose Content-Type matches none of the
// given media types.
func RequireContentType(mediaTypes ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		contentType := ctx.GetHeader("Content-Type")

		for _, mediaType := range mediaTypes {
			if strings.Contains(contentType, mediaType) {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusUnsupportedMediaType, models.APIResponse{
			Success: false,
			Error:   "Unsupported content type",
		})
	}
}
