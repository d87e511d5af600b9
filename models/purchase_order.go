package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PurchaseOrderDraft    = "draft"
	PurchaseOrderOrdered  = "ordered"
	PurchaseOrderReceived = "received"
)

type PurchaseOrder struct {
	ID         uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID           `json:"user_id" gorm:"type:uuid;not null;index"`
	SupplierID *uuid.UUID          `json:"supplier_id,omitempty" gorm:"type:uuid;index"`
	Status     string              `json:"status" gorm:"not null;default:'draft';check:status IN ('draft', 'ordered', 'received');index"`
	TotalCost  float64             `json:"total_cost" gorm:"type:numeric(12,2);not null;default:0"`
	ReceivedAt *time.Time          `json:"received_at,omitempty"`
	Supplier   *Supplier           `json:"supplier,omitempty" gorm:"foreignKey:SupplierID;references:ID"`
	Items      []PurchaseOrderItem `json:"items" gorm:"foreignKey:PurchaseOrderID"`
	CreatedAt  time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (po *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

type PurchaseOrderItem struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID `json:"purchase_order_id" gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity        int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitCost        float64   `json:"unit_cost" gorm:"type:numeric(12,2);not null;check:unit_cost >= 0"`
}

// BeforeCreate hook - auto-generate UUID v7
func (poi *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if poi.ID == uuid.Nil {
		poi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type PurchaseOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitCost  float64   `json:"unit_cost" binding:"min=0"`
}

type PurchaseOrderRequest struct {
	SupplierID *uuid.UUID                 `json:"supplier_id"`
	Status     string                     `json:"status" binding:"omitempty,oneof=draft ordered"`
	Items      []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}
