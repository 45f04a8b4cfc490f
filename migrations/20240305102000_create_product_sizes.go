package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func createProductSizes() *gormigrate.Migration {
	type Product struct {
		ID uint `gorm:"primaryKey"`
	}
	type ProductSize struct {
		ID        uint    `gorm:"primaryKey"`
		ProductID uint    `gorm:"not null;index"`
		Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
		Size      string  `gorm:"size:20;not null"`
		Quantity  int     `gorm:"not null;default:0"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	return &gormigrate.Migration{
		ID: "20240305102000_create_product_sizes",
		Migrate: func(tx *gorm.DB) error {
			return createTableIfMissing(tx, &ProductSize{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable("product_sizes")
		},
	}
}
