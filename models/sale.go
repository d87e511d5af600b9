package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sale struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_sales_user_date,sort:desc"`
	CustomerID  *uuid.UUID `json:"customer_id,omitempty" gorm:"type:uuid;index"`
	TotalAmount float64    `json:"total_amount" gorm:"type:numeric(12,2);not null;check:total_amount >= 0"`
	Note        string     `json:"note"`
	Customer    *Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
	Items       []SaleItem `json:"items" gorm:"foreignKey:SaleID"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index:idx_sales_user_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Sale) TableName() string {
	return "sales"
}

// SaleItem snapshots name and unit price at sale time so historical revenue
// survives later product edits. Products referenced here are soft-referenced:
// they cannot be hard-deleted while a sale item points at them.
type SaleItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID `json:"sale_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:numeric(12,2);not null;check:unit_price >= 0"`
}

// BeforeCreate hook - auto-generate UUID v7
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SaleItem) TableName() string {
	return "sale_items"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1" example:"2"`
}

type SaleRequest struct {
	CustomerID *uuid.UUID        `json:"customer_id"`
	Note       string            `json:"note"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
