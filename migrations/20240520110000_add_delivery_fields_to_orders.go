package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var deliveryFields = []string{
	"RecipientName",
	"PhoneNumber",
	"AddressLine1",
	"AddressLine2",
	"City",
	"Province",
	"PostalCode",
	"DeliveryInstructions",
}

func addDeliveryFieldsToOrders() *gormigrate.Migration {
	type Order struct {
		RecipientName        *string `gorm:"size:255"`
		PhoneNumber          *string `gorm:"size:50"`
		AddressLine1         *string `gorm:"size:255"`
		AddressLine2         *string `gorm:"size:255"`
		City                 *string `gorm:"size:100"`
		Province             *string `gorm:"size:100"`
		PostalCode           *string `gorm:"size:20"`
		DeliveryInstructions *string `gorm:"type:text"`
	}

	return &gormigrate.Migration{
		ID: "20240520110000_add_delivery_fields_to_orders",
		Migrate: func(tx *gorm.DB) error {
			return addColumnsIfMissing(tx, &Order{}, deliveryFields...)
		},
		Rollback: func(tx *gorm.DB) error {
			return dropColumnsIfPresent(tx, &Order{}, deliveryFields...)
		},
	}
}
