package controllers

import (
	"net/http"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Klenhub API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCT
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID

ADMIN (admin token required)
- GET "/admin" - Store overview
- GET "/admin/content/:section" - Content pages
- GET "/admin/marketing/:section" - Marketing pages
- GET "/admin/settings/:section" - Settings pages

HEALTH
- GET "/health" - Server and database status`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func GetHealth(ctx *gin.Context) {
	sqlDB, err := initializers.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		log.Ctx(ctx.Request.Context()).Error().Err(err).Msg("database ping failed")
		respondWithError(ctx, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
