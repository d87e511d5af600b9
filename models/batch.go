package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Batch is a lot of a product: its quantity contributes to the product's
// total, so batch mutations adjust the product row in the same transaction.
type Batch struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index"`
	LocationID *uuid.UUID `json:"location_id,omitempty" gorm:"type:uuid;index"`
	LotNumber  string     `json:"lot_number" gorm:"not null"`
	Quantity   int        `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Product    *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	Location   *Location  `json:"location,omitempty" gorm:"foreignKey:LocationID;references:ID"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *Batch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Batch) TableName() string {
	return "batches"
}

type BatchRequest struct {
	ProductID  uuid.UUID  `json:"product_id" binding:"required"`
	LocationID *uuid.UUID `json:"location_id"`
	LotNumber  string     `json:"lot_number" binding:"required" example:"LOT-2024-091"`
	Quantity   int        `json:"quantity" binding:"min=0" example:"120"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

type UpdateBatchRequest struct {
	LocationID *uuid.UUID `json:"location_id"`
	LotNumber  *string    `json:"lot_number"`
	Quantity   *int       `json:"quantity" binding:"omitempty,min=0"`
	ExpiryDate *time.Time `json:"expiry_date"`
}
