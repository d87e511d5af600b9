package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MovementAdjustment = "adjustment"
	MovementSale       = "sale"
	MovementPurchase   = "purchase"
	MovementBatch      = "batch"
)

// StockMovement is the audit trail of every quantity change. The row is
// written inside the same transaction as the product update.
type StockMovement struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index:idx_movements_product_date,sort:desc"`
	Change    int       `json:"change" gorm:"not null"` // signed delta
	Type      string    `json:"type" gorm:"not null;check:type IN ('adjustment', 'sale', 'purchase', 'batch');index"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_movements_product_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (sm *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if sm.ID == uuid.Nil {
		sm.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
