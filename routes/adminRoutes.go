package routes

import (
	"github.com/Kariqs/klenhub-api/controllers"
	"github.com/Kariqs/klenhub-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, jwtSecret string) {
	admin := server.Group("/admin", middlewares.RequireAuth(jwtSecret), middlewares.RequireAdmin())
	{
		admin.GET("", controllers.GetAdminDashboard)

		pages := map[string]controllers.PlaceholderPage{
			"/content":   controllers.ContentPage,
			"/marketing": controllers.MarketingPage,
			"/settings":  controllers.SettingsPage,
		}
		for prefix, page := range pages {
			admin.GET(prefix, page.Handler())
			admin.GET(prefix+"/:section", page.Handler())
		}
	}
}
