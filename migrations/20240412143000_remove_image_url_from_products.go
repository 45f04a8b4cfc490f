package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func removeImageURLFromProducts() *gormigrate.Migration {
	type Product struct {
		ImageURL *string `gorm:"column:image_url;size:512"`
	}

	return &gormigrate.Migration{
		ID: "20240412143000_remove_image_url_from_products",
		Migrate: func(tx *gorm.DB) error {
			return dropColumnsIfPresent(tx, &Product{}, "ImageURL")
		},
		Rollback: func(tx *gorm.DB) error {
			return addColumnsIfMissing(tx, &Product{}, "ImageURL")
		},
	}
}
