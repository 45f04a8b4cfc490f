package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func createOrders() *gormigrate.Migration {
	type Order struct {
		ID          uint            `gorm:"primaryKey"`
		UserID      *uint           `gorm:"index"`
		TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
		Status      string          `gorm:"size:50;not null;default:Pending"`
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	return &gormigrate.Migration{
		ID: "20240301090000_create_orders",
		Migrate: func(tx *gorm.DB) error {
			return createTableIfMissing(tx, &Order{})
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable("orders")
		},
	}
}
