package models

import "time"

// InventoryAnalytics is the dashboard snapshot for one tenant. It is always
// derived from current product rows, never persisted.
type InventoryAnalytics struct {
	TotalProducts   int                `json:"total_products"`    // All products for the tenant
	TotalValue      float64            `json:"total_value"`       // Σ price × quantity
	LowStockCount   int                `json:"low_stock_count"`   // Threshold set and quantity at or below it
	OutOfStockCount int                `json:"out_of_stock_count"`// Quantity exactly zero
	ValueByCategory map[string]float64 `json:"value_by_category"` // Category name → stock value, "Uncategorized" for products without one
}

// SalesAnalytics aggregates sales for an optional inclusive date range
type SalesAnalytics struct {
	TotalSales   int        `json:"total_sales"`
	TotalRevenue float64    `json:"total_revenue"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	RecentSales  []Sale     `json:"recent_sales"` // Most recent first, line items included, never nil
}
