package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = 1
	OrderStatusAwaiting  = 2
	OrderStatusCompleted = 3
	OrderStatusCancelled = 4
	OrderStatusFailed    = 5
)

type Order struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderCode     string          `gorm:"type:varchar(64);unique;not null" json:"order_code"`
	OrderDate     time.Time       `gorm:"not null" json:"order_date"`
	CustomerName  string          `gorm:"size:255" json:"customer_name"`
	CustomerEmail string          `gorm:"size:255;index" json:"customer_email"`
	OrderItems    []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(16,2);" json:"subtotal"`
	Shipping      decimal.Decimal `gorm:"type:decimal(16,2);" json:"shipping"`
	Tax           decimal.Decimal `gorm:"type:decimal(16,2);" json:"tax"`
	Total         decimal.Decimal `gorm:"type:decimal(16,2);" json:"total"`
	PaymentToken  string          `gorm:"size:255;index" json:"-"`
	PaymentURL    string          `gorm:"type:text" json:"payment_url,omitempty"`
	PaymentStatus string          `gorm:"size:100" json:"payment_status"`
	Status        int             `gorm:"default:1" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

type OrderItem struct {
	ID             string          `gorm:"primaryKey;type:varchar(36);not null" json:"id"`
	OrderID        string          `gorm:"type:varchar(36);not null;index" json:"order_id"`
	ProductID      string          `gorm:"type:varchar(36);not null;index" json:"product_id"`
	ProductName    string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Size           Size            `gorm:"size:8" json:"size,omitempty"`
	Color          Color           `gorm:"size:16" json:"color,omitempty"`
	Qty            int             `gorm:"not null" json:"qty"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unit_price"`
	EffectivePrice decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"effective_price"`
	LineTotal      decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"line_total"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
