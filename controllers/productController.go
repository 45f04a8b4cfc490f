package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kariqs/klenhub-api/initializers"
	"github.com/Kariqs/klenhub-api/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	// Keeps (page-1)*limit well inside int range.
	maxPage = 1_000_000
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

func pagination(ctx *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	limit, err = strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func GetProducts(ctx *gin.Context) {
	page, limit := pagination(ctx)
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.Product{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		log.Ctx(ctx.Request.Context()).Error().Err(err).Msg("count products")
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", err)
		return
	}

	var products []models.Product
	result := query.Preload("Images").Order("id asc").Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		log.Ctx(ctx.Request.Context()).Error().Err(result.Error).Msg("list products")
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total":       count,
			"page":        page,
			"limit":       limit,
			"hasNextPage": int64(page*limit) < count,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.Preload("Sizes").Preload("Images").First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			log.Ctx(ctx.Request.Context()).Error().Err(result.Error).Int("product_id", productId).Msg("get product")
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}
