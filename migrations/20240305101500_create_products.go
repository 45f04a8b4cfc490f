package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func createProducts() *gormigrate.Migration {
	// ImageURL predates the product_images table and is dropped again by
	// removeImageURLFromProducts.
	type Product struct {
		ID          uint            `gorm:"primaryKey"`
		Name        string          `gorm:"size:255;not null"`
		Description string          `gorm:"type:text"`
		Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
		Category    string          `gorm:"size:100"`
		ImageURL    *string         `gorm:"column:image_url;size:512"`
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	return &gormigrate.Migration{
		ID: "20240305101500_create_products",
		Migrate: func(tx *gorm.DB) error {
			return createTableIfMissing(tx, &Product{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable("products")
		},
	}
}
