package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed customer order.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	IdempotencyKey  string         `gorm:"uniqueIndex;not null" json:"-"` // checkout replay guard
	UserID          uint           `gorm:"index;not null" json:"user_id,omitempty"` // 0 for guest orders
	CustomerName    string         `gorm:"type:varchar(200);not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"index;not null" json:"customer_email"`
	CustomerPhone   string         `gorm:"index;not null" json:"customer_phone"`
	ShippingAddress string         `gorm:"type:varchar(500);not null" json:"shipping_address"`
	ShippingCity    string         `gorm:"type:varchar(100)" json:"shipping_city"`
	ShippingMethod  string         `gorm:"type:varchar(20);not null" json:"shipping_method"`
	PaymentMethod   string         `gorm:"type:varchar(20);not null" json:"payment_method"`
	Status          string         `gorm:"index;not null" json:"status"`
	Currency        string         `gorm:"not null" json:"currency"`
	Subtotal        Money          `gorm:"type:decimal(20,0);not null;default:0" json:"subtotal"`
	ShippingFee     Money          `gorm:"type:decimal(20,0);not null;default:0" json:"shipping_fee"`
	DiscountAmount  Money          `gorm:"type:decimal(20,0);not null;default:0" json:"discount_amount"`
	TaxAmount       Money          `gorm:"type:decimal(20,0);not null;default:0" json:"tax_amount"`
	TotalAmount     Money          `gorm:"type:decimal(20,0);not null;default:0" json:"total_amount"`
	Note            string         `gorm:"type:varchar(1000)" json:"note,omitempty"`
	ClientIP        string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`
	CanceledAt      *time.Time     `gorm:"index" json:"canceled_at"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
