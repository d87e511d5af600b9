package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_products_user_sku"`
	Name              string     `json:"name" gorm:"not null;index"`
	SKU               *string    `json:"sku,omitempty" gorm:"uniqueIndex:idx_products_user_sku"` // unique per tenant, not globally
	Manufacturer      string     `json:"manufacturer"`
	Quantity          int        `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	Price             float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	LowStockThreshold *int       `json:"low_stock_threshold,omitempty" gorm:"check:low_stock_threshold >= 0"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`
	SupplierID        *uuid.UUID `json:"supplier_id,omitempty" gorm:"type:uuid;index"`
	CategoryName      *string    `json:"category_name,omitempty" gorm:"-"` // Computed field
	Category          *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Supplier          *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;references:ID"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - populate CategoryName from relationship
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.Category != nil {
		p.CategoryName = &p.Category.Name
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name              string     `json:"name" binding:"required" example:"Espresso Beans 1kg"`
	SKU               *string    `json:"sku" example:"ESP-1000"`
	Manufacturer      string     `json:"manufacturer" example:"Roastery Co"`
	Quantity          int        `json:"quantity" binding:"min=0" example:"40"`
	Price             float64    `json:"price" binding:"required,min=0" example:"18.50"`
	LowStockThreshold *int       `json:"low_stock_threshold" binding:"omitempty,min=0" example:"10"`
	CategoryID        *uuid.UUID `json:"category_id"`
	SupplierID        *uuid.UUID `json:"supplier_id"`
}

type UpdateProductRequest struct {
	Name              *string    `json:"name"`
	SKU               *string    `json:"sku"`
	Manufacturer      *string    `json:"manufacturer"`
	Price             *float64   `json:"price" binding:"omitempty,min=0"`
	LowStockThreshold *int       `json:"low_stock_threshold" binding:"omitempty,min=0"`
	CategoryID        *uuid.UUID `json:"category_id"`
	SupplierID        *uuid.UUID `json:"supplier_id"`
}

// AdjustStockRequest changes a product quantity by a signed delta and records
// the movement that explains it.
type AdjustStockRequest struct {
	Change int    `json:"change" binding:"required" example:"-5"`
	Reason string `json:"reason" example:"cycle count correction"`
}

type SetThresholdRequest struct {
	// nil clears the threshold: the product stays eligible for out-of-stock
	// alerts only.
	LowStockThreshold *int `json:"low_stock_threshold" binding:"omitempty,min=0"`
}
