package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
)

// DefaultDaysOfStock is the coverage window reorder callers usually ask for.
// The current heuristic does not consume it (see ReorderRecommendations).
const DefaultDaysOfStock = 30

// AlertStore is the slice of the persistence gateway the alert engine needs.
// *gateway.Gateway satisfies it.
type AlertStore interface {
	AlertingProducts(ctx context.Context, tenantID uuid.UUID) ([]models.Product, error)
	UpdateProductThreshold(ctx context.Context, tenantID, productID uuid.UUID, threshold *int) error
}

// AlertService derives stock alerts and reorder recommendations from current
// product rows. Nothing it produces is persisted.
type AlertService struct {
	store AlertStore
	cache *cache.ResultCache
}

func NewAlertService(store AlertStore, rc *cache.ResultCache) *AlertService {
	return &AlertService{store: store, cache: rc}
}

// StockAlerts classifies every alerting product for the tenant, ordered by
// quantity ascending with a name tie-break.
func (s *AlertService) StockAlerts(ctx context.Context, tenantID uuid.UUID) ([]models.StockAlert, error) {
	key := "alerts:stock:" + tenantID.String()
	tags := []string{cache.TagProducts, cache.TagAnalytics}
	return cache.Through(s.cache, key, tags, cache.TTLAnalytics, func() ([]models.StockAlert, error) {
		products, err := s.store.AlertingProducts(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		alerts := make([]models.StockAlert, 0, len(products))
		for _, p := range products {
			alerts = append(alerts, classify(p))
		}
		return alerts, nil
	})
}

// classify maps one alerting product to its alert. Invariants:
// out_of_stock iff quantity == 0; low_stock iff threshold set and
// 0 < quantity <= threshold; critical iff quantity == 0 or
// quantity <= threshold * 0.5.
func classify(p models.Product) models.StockAlert {
	alert := models.StockAlert{
		ProductID:    p.ID,
		ProductName:  p.Name,
		CurrentStock: p.Quantity,
		Threshold:    p.LowStockThreshold,
	}

	if p.Quantity == 0 {
		alert.AlertType = models.AlertOutOfStock
		alert.Severity = models.SeverityCritical
		alert.Message = fmt.Sprintf("%s is out of stock", p.Name)
		return alert
	}

	alert.AlertType = models.AlertLowStock
	threshold := *p.LowStockThreshold
	if float64(p.Quantity) <= float64(threshold)*0.5 {
		alert.Severity = models.SeverityCritical
	} else {
		alert.Severity = models.SeverityWarning
	}
	alert.Message = fmt.Sprintf("%s is low on stock: %d left (threshold %d)", p.Name, p.Quantity, threshold)
	return alert
}

// AlertSummary counts alerts by severity and type
func (s *AlertService) AlertSummary(ctx context.Context, tenantID uuid.UUID) (models.StockAlertSummary, error) {
	alerts, err := s.StockAlerts(ctx, tenantID)
	if err != nil {
		return models.StockAlertSummary{}, err
	}

	summary := models.StockAlertSummary{TotalAlerts: len(alerts)}
	for _, a := range alerts {
		switch a.AlertType {
		case models.AlertOutOfStock:
			summary.OutOfStock++
		case models.AlertLowStock:
			summary.LowStock++
		}
		if a.Severity == models.SeverityCritical {
			summary.CriticalAlerts++
		}
	}
	summary.WarningAlerts = summary.TotalAlerts - summary.CriticalAlerts
	return summary, nil
}

// ReorderRecommendations suggests order quantities for every alerting
// product, most urgent first.
//
// The formula is deliberately naive: targetStock is twice the threshold (10
// without one), and estimatedDaysRemaining scales a fixed 7-day baseline by
// the stock/threshold ratio instead of consuming actual sales velocity, so
// daysOfStock is accepted for API stability but currently unused. Replacing
// this with demand-based forecasting is a product decision, not a bugfix.
func (s *AlertService) ReorderRecommendations(ctx context.Context, tenantID uuid.UUID, daysOfStock int) ([]models.ReorderRecommendation, error) {
	_ = daysOfStock

	alerts, err := s.StockAlerts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	recs := make([]models.ReorderRecommendation, 0, len(alerts))
	for _, a := range alerts {
		targetStock := 10
		minOrder := 5
		daysRemaining := 0
		if a.Threshold != nil {
			t := *a.Threshold
			targetStock = t * 2
			minOrder = t
			if a.CurrentStock > 0 && t > 0 {
				daysRemaining = (a.CurrentStock * 7) / t
			}
		}

		recs = append(recs, models.ReorderRecommendation{
			ProductID:                a.ProductID,
			ProductName:              a.ProductName,
			CurrentStock:             a.CurrentStock,
			Threshold:                a.Threshold,
			TargetStock:              targetStock,
			RecommendedOrderQuantity: max(targetStock-a.CurrentStock, minOrder),
			EstimatedDaysRemaining:   daysRemaining,
			AlertType:                models.AlertRestockNeeded,
			Severity:                 models.SeverityInfo,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].EstimatedDaysRemaining < recs[j].EstimatedDaysRemaining
	})
	return recs, nil
}

// SetAlertThreshold updates a product's low-stock threshold; nil clears it.
// The cache is invalidated only after the write commits.
func (s *AlertService) SetAlertThreshold(ctx context.Context, tenantID, productID uuid.UUID, threshold *int) error {
	if err := s.store.UpdateProductThreshold(ctx, tenantID, productID, threshold); err != nil {
		return err
	}
	s.cache.Invalidate(cache.TagProducts, cache.TagAnalytics)
	return nil
}
