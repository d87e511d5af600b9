package gateway

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter holds the optional list-screen filters. Each set field is
// AND-combined; an explicit builder instead of a stringly-typed where map.
type ProductFilter struct {
	Search         *string // case-insensitive substring on name, sku, manufacturer
	CategoryID     *uuid.UUID
	SupplierID     *uuid.UUID
	LowStockOnly   bool
	OutOfStockOnly bool
}

func (f ProductFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Search != nil && *f.Search != "" {
		like := "%" + *f.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR manufacturer ILIKE ?", like, like, like)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.SupplierID != nil {
		q = q.Where("supplier_id = ?", *f.SupplierID)
	}
	if f.LowStockOnly {
		q = q.Where("low_stock_threshold IS NOT NULL AND quantity <= low_stock_threshold")
	}
	if f.OutOfStockOnly {
		q = q.Where("quantity = 0")
	}
	return q
}

// DateRange is an inclusive [Start, End] filter; either bound may be nil.
// End is stretched to the last instant of its day so ISO date inputs behave
// inclusively.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) apply(q *gorm.DB, column string) *gorm.DB {
	if r.Start != nil {
		q = q.Where(column+" >= ?", *r.Start)
	}
	if r.End != nil {
		end := r.End.AddDate(0, 0, 1)
		q = q.Where(column+" < ?", end)
	}
	return q
}

// ActivityFilter narrows the activity feed
type ActivityFilter struct {
	Action     *string
	EntityType *string
	Range      DateRange
}

func (f ActivityFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Action != nil && *f.Action != "" {
		q = q.Where("action = ?", *f.Action)
	}
	if f.EntityType != nil && *f.EntityType != "" {
		q = q.Where("entity_type = ?", *f.EntityType)
	}
	return f.Range.apply(q, "created_at")
}
