package controllers

import (
	"net/http"
	"strings"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/Kariqs/klenhub-api/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

const comingSoonMessage = "This page is coming soon."

// PlaceholderPage is an admin page that only announces its title.
type PlaceholderPage struct {
	DefaultTitle string
	Titles       map[string]string
}

var (
	ContentPage = PlaceholderPage{
		DefaultTitle: "Content",
		Titles: map[string]string{
			"pages":      "Pages",
			"blog":       "Blog Posts",
			"media":      "Media Library",
			"navigation": "Navigation",
		},
	}
	MarketingPage = PlaceholderPage{
		DefaultTitle: "Marketing",
		Titles: map[string]string{
			"campaigns":  "Campaigns",
			"discounts":  "Discount Codes",
			"newsletter": "Newsletter",
			"promotions": "Promotions",
		},
	}
	SettingsPage = PlaceholderPage{
		DefaultTitle: "Settings",
		Titles: map[string]string{
			"general":  "General Settings",
			"payments": "Payment Settings",
			"shipping": "Shipping & Delivery",
			"staff":    "Staff Accounts",
		},
	}
)

// Title picks the title for the last segment of path, or the default.
func (p PlaceholderPage) Title(path string) string {
	if title, ok := p.Titles[lastSegment(path)]; ok {
		return title
	}
	return p.DefaultTitle
}

// Handler renders the page as HTML, or as JSON when the client asks for it.
func (p PlaceholderPage) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		data := gin.H{
			"title":   p.Title(ctx.Request.URL.Path),
			"message": comingSoonMessage,
		}
		ctx.Negotiate(http.StatusOK, gin.Negotiate{
			Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
			HTMLName: "placeholder.html",
			Data:     data,
		})
	}
}

func lastSegment(path string) string {
	path = strings.TrimRight(path, "/")
	return path[strings.LastIndex(path, "/")+1:]
}

func GetAdminDashboard(ctx *gin.Context) {
	var productCount, undeliveredOrderCount int64

	if err := initializers.DB.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		log.Ctx(ctx.Request.Context()).Error().Err(err).Msg("count products")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count products", err)
		return
	}

	if err := initializers.DB.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCompleted).
		Count(&undeliveredOrderCount).Error; err != nil {
		log.Ctx(ctx.Request.Context()).Error().Err(err).Msg("count undelivered orders")
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count undelivered orders", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"productCount":          productCount,
		"undeliveredOrderCount": undeliveredOrderCount,
	})
}
