package routes

import (
	"time"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/Kariqs/klenhub-api/middlewares"
	"github.com/Kariqs/klenhub-api/templates"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and every route group.
func NewRouter(cfg *initializers.Config) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery(), middlewares.RequestLogger())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.SetHTMLTemplate(templates.Load())

	DefaultRoutes(server)
	ProductRoutes(server)
	AdminRoutes(server, cfg.JWTSecret)
	return server
}
