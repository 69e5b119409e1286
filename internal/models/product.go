package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog item.
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`
	NameJSON        JSON           `gorm:"type:json;not null" json:"name"`        // localized name
	DescriptionJSON JSON           `gorm:"type:json" json:"description"`          // localized description
	Material        string         `gorm:"type:varchar(200)" json:"material"`     // e.g. oak, walnut, rattan
	Dimensions      string         `gorm:"type:varchar(200)" json:"dimensions"`   // W x D x H in cm
	PriceAmount     Money          `gorm:"type:decimal(20,0);not null;default:0" json:"price_amount"`
	SalePriceAmount *Money         `gorm:"type:decimal(20,0)" json:"sale_price_amount"` // nil when not on sale
	Images          StringArray    `gorm:"type:json" json:"images"`
	IsActive        bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// EffectivePrice returns the sale price when set, otherwise the list price.
func (p Product) EffectivePrice() Money {
	if p.SalePriceAmount != nil {
		return *p.SalePriceAmount
	}
	return p.PriceAmount
}
