package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EntityTypeProduct       = "product"
	EntityTypeCategory      = "category"
	EntityTypeSupplier      = "supplier"
	EntityTypeCustomer      = "customer"
	EntityTypeLocation      = "location"
	EntityTypeBatch         = "batch"
	EntityTypeSale          = "sale"
	EntityTypePurchaseOrder = "purchase_order"
)

// ActivityLog records a tenant mutation for the back-office activity feed
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_activity_user_date,sort:desc"`
	Action       string         `json:"action" gorm:"not null;index"`      // created_product, updated_batch, deleted_supplier, etc.
	EntityType   string         `json:"entity_type" gorm:"not null;index"` // product, category, supplier, ...
	EntityID     string         `json:"entity_id" gorm:"not null;index"`
	EntityName   string         `json:"entity_name"`               // Human readable: product name, supplier name, etc.
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_user_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = "success"
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityChanges represents the before/after changes
type ActivityChanges struct {
	Before map[string]interface{} `json:"before"`
	After  map[string]interface{} `json:"after"`
}

func (ac ActivityChanges) ToJSON() (datatypes.JSON, error) {
	raw, err := json.Marshal(map[string]interface{}{
		"before": ac.Before,
		"after":  ac.After,
	})
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
