package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func createProductImages() *gormigrate.Migration {
	type Product struct {
		ID uint `gorm:"primaryKey"`
	}
	type ProductImage struct {
		ID        uint    `gorm:"primaryKey"`
		ProductID uint    `gorm:"not null;index"`
		Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
		ImageURL  string  `gorm:"column:image_url;size:512;not null"`
		IsMain    bool    `gorm:"not null;default:false"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	return &gormigrate.Migration{
		ID: "20240305102500_create_product_images",
		Migrate: func(tx *gorm.DB) error {
			return createTableIfMissing(tx, &ProductImage{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable("product_images")
		},
	}
}
