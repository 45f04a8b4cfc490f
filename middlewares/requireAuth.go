package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kariqs/klenhub-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequireAuth validates the bearer token and stores its claims under "user".
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}

		claims, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			log.Ctx(ctx.Request.Context()).Debug().Err(err).Msg("rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set("user", claims)
		ctx.Next()
	}
}
