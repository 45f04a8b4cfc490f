package seeders

import (
	"github.com/Kariqs/klenhub-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var demoSizes = []string{"S", "M", "L", "XL"}

func sizes(quantities ...int) []models.ProductSize {
	out := make([]models.ProductSize, 0, len(demoSizes))
	for i, label := range demoSizes {
		out = append(out, models.ProductSize{Size: label, Quantity: quantities[i]})
	}
	return out
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Klenhub Classic Tee",
			Description: "Heavyweight cotton t-shirt with the embroidered Klenhub logo.",
			Price:       decimal.RequireFromString("29.99"),
			Category:    "T-Shirts",
			Sizes:       sizes(25, 40, 40, 15),
			Images: []models.ProductImage{
				{ImageURL: "/images/products/classic-tee-front.jpg", IsMain: true},
				{ImageURL: "/images/products/classic-tee-back.jpg", IsMain: false},
			},
		},
		{
			Name:        "Essential Hoodie",
			Description: "Brushed fleece hoodie with a relaxed fit and kangaroo pocket.",
			Price:       decimal.RequireFromString("64.50"),
			Category:    "Hoodies",
			Sizes:       sizes(10, 20, 20, 8),
			Images: []models.ProductImage{
				{ImageURL: "/images/products/essential-hoodie.jpg", IsMain: true},
			},
		},
		{
			Name:        "Utility Cargo Pants",
			Description: "Tapered cargo pants in ripstop cotton with six pockets.",
			Price:       decimal.RequireFromString("54.00"),
			Category:    "Pants",
			Sizes:       sizes(12, 18, 18, 6),
			Images: []models.ProductImage{
				{ImageURL: "/images/products/utility-cargo-pants.jpg", IsMain: true},
			},
		},
	}
}

// DemoProducts seeds three products with four sizes each and four images.
func DemoProducts() Seeder {
	return Seeder{
		Name: "demo_products",
		Up: func(tx *gorm.DB) error {
			products := demoProducts()
			return tx.Create(&products).Error
		},
		Down: func(tx *gorm.DB) error {
			all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
			if err := all.Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := all.Delete(&models.ProductSize{}).Error; err != nil {
				return err
			}
			return all.Delete(&models.Product{}).Error
		},
	}
}
