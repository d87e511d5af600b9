package models

import "github.com/google/uuid"

// Alert types
const (
	AlertOutOfStock    = "out_of_stock"
	AlertLowStock      = "low_stock"
	AlertRestockNeeded = "restock_needed"
)

// Severities
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// StockAlert is derived per request from current product rows, never stored.
// Invariants: out_of_stock iff quantity == 0; low_stock iff a threshold is
// set and 0 < quantity <= threshold; severity critical iff quantity == 0 or
// quantity <= threshold/2.
type StockAlert struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CurrentStock int       `json:"current_stock"`
	Threshold    *int      `json:"threshold,omitempty"`
	AlertType    string    `json:"alert_type"`
	Severity     string    `json:"severity"`
	Message      string    `json:"message"`
}

type StockAlertSummary struct {
	TotalAlerts    int `json:"total_alerts"`
	CriticalAlerts int `json:"critical_alerts"`
	WarningAlerts  int `json:"warning_alerts"`
	OutOfStock     int `json:"out_of_stock"`
	LowStock       int `json:"low_stock"`
}

// ReorderRecommendation is a heuristic purchase suggestion computed from the
// current stock level and threshold, not from demand history.
type ReorderRecommendation struct {
	ProductID                uuid.UUID `json:"product_id"`
	ProductName              string    `json:"product_name"`
	CurrentStock             int       `json:"current_stock"`
	Threshold                *int      `json:"threshold,omitempty"`
	TargetStock              int       `json:"target_stock"`
	RecommendedOrderQuantity int       `json:"recommended_order_quantity"`
	EstimatedDaysRemaining   int       `json:"estimated_days_remaining"`
	AlertType                string    `json:"alert_type"`
	Severity                 string    `json:"severity"`
}
