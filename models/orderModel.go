package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
)

// Order carries optional delivery details; every delivery column is nullable.
type Order struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	UserID               *uint           `json:"userId" gorm:"index"`
	TotalAmount          decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2);not null;default:0"`
	Status               string          `json:"status" gorm:"size:50;not null;default:Pending"`
	RecipientName        *string         `json:"recipientName"`
	PhoneNumber          *string         `json:"phoneNumber"`
	AddressLine1         *string         `json:"addressLine1"`
	AddressLine2         *string         `json:"addressLine2"`
	City                 *string         `json:"city"`
	Province             *string         `json:"province"`
	PostalCode           *string         `json:"postalCode"`
	DeliveryInstructions *string         `json:"deliveryInstructions"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}
