package services

import (
	"context"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// UncategorizedLabel stands in for products without a category. It is a
// presentation fallback, not a stored row.
const UncategorizedLabel = "Uncategorized"

const recentSalesLimit = 10

// AnalyticsStore is the slice of the persistence gateway the analytics
// engine needs. *gateway.Gateway satisfies it.
type AnalyticsStore interface {
	CountProducts(ctx context.Context, tenantID uuid.UUID) (int64, error)
	InventoryValue(ctx context.Context, tenantID uuid.UUID) (float64, error)
	CountOutOfStock(ctx context.Context, tenantID uuid.UUID) (int64, error)
	CountAtOrBelowThreshold(ctx context.Context, tenantID uuid.UUID) (int64, error)
	ValueByCategory(ctx context.Context, tenantID uuid.UUID) ([]gateway.CategoryValue, error)
	CategoryNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error)
	CountSales(ctx context.Context, tenantID uuid.UUID, r gateway.DateRange) (int64, error)
	SalesRevenue(ctx context.Context, tenantID uuid.UUID, r gateway.DateRange) (float64, error)
	RecentSales(ctx context.Context, tenantID uuid.UUID, r gateway.DateRange, limit int) ([]models.Sale, error)
}

// AnalyticsService computes tenant dashboards. Reads go through the result
// cache; mutations elsewhere invalidate the tags these entries carry.
type AnalyticsService struct {
	store AnalyticsStore
	cache *cache.ResultCache
}

func NewAnalyticsService(store AnalyticsStore, rc *cache.ResultCache) *AnalyticsService {
	return &AnalyticsService{store: store, cache: rc}
}

// InventoryAnalytics returns the valuation snapshot for one tenant
func (s *AnalyticsService) InventoryAnalytics(ctx context.Context, tenantID uuid.UUID) (models.InventoryAnalytics, error) {
	key := "analytics:inventory:" + tenantID.String()
	tags := []string{cache.TagAnalytics, cache.TagProducts, cache.TagCategories}
	return cache.Through(s.cache, key, tags, cache.TTLAnalytics, func() (models.InventoryAnalytics, error) {
		return s.computeInventoryAnalytics(ctx, tenantID)
	})
}

func (s *AnalyticsService) computeInventoryAnalytics(ctx context.Context, tenantID uuid.UUID) (models.InventoryAnalytics, error) {
	var (
		totalProducts int64
		totalValue    float64
		lowStock      int64
		outOfStock    int64
		byCategory    []gateway.CategoryValue
		names         map[uuid.UUID]string
	)

	// Independent reads fan out and join before shaping the snapshot.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalProducts, err = s.store.CountProducts(gctx, tenantID)
		return
	})
	g.Go(func() (err error) {
		totalValue, err = s.store.InventoryValue(gctx, tenantID)
		return
	})
	g.Go(func() (err error) {
		lowStock, err = s.store.CountAtOrBelowThreshold(gctx, tenantID)
		return
	})
	g.Go(func() (err error) {
		outOfStock, err = s.store.CountOutOfStock(gctx, tenantID)
		return
	})
	g.Go(func() (err error) {
		byCategory, err = s.store.ValueByCategory(gctx, tenantID)
		return
	})
	g.Go(func() (err error) {
		names, err = s.store.CategoryNames(gctx, tenantID)
		return
	})
	if err := g.Wait(); err != nil {
		return models.InventoryAnalytics{}, err
	}

	valueByCategory := make(map[string]float64, len(byCategory))
	for _, row := range byCategory {
		label := UncategorizedLabel
		if row.CategoryID != nil {
			if name, ok := names[*row.CategoryID]; ok {
				label = name
			}
		}
		valueByCategory[label] += row.Value
	}

	return models.InventoryAnalytics{
		TotalProducts:   int(totalProducts),
		TotalValue:      totalValue,
		LowStockCount:   int(lowStock),
		OutOfStockCount: int(outOfStock),
		ValueByCategory: valueByCategory,
	}, nil
}

// SalesAnalytics aggregates sales for an optional inclusive date range
func (s *AnalyticsService) SalesAnalytics(ctx context.Context, tenantID uuid.UUID, r gateway.DateRange) (models.SalesAnalytics, error) {
	key := "analytics:sales:" + tenantID.String() + ":" + rangeKey(r)
	tags := []string{cache.TagAnalytics, cache.TagSales}
	return cache.Through(s.cache, key, tags, cache.TTLAnalytics, func() (models.SalesAnalytics, error) {
		return s.computeSalesAnalytics(ctx, tenantID, r)
	})
}

func (s *AnalyticsService) computeSalesAnalytics(ctx context.Context, tenantID uuid.UUID, r gateway.DateRange) (models.SalesAnalytics, error) {
	var (
		count   int64
		revenue float64
		recent  []models.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		count, err = s.store.CountSales(gctx, tenantID, r)
		return
	})
	g.Go(func() (err error) {
		revenue, err = s.store.SalesRevenue(gctx, tenantID, r)
		return
	})
	g.Go(func() (err error) {
		recent, err = s.store.RecentSales(gctx, tenantID, r, recentSalesLimit)
		return
	})
	if err := g.Wait(); err != nil {
		return models.SalesAnalytics{}, err
	}

	if recent == nil {
		recent = make([]models.Sale, 0)
	}

	return models.SalesAnalytics{
		TotalSales:   int(count),
		TotalRevenue: revenue,
		StartDate:    r.Start,
		EndDate:      r.End,
		RecentSales:  recent,
	}, nil
}

func rangeKey(r gateway.DateRange) string {
	format := func(t *time.Time) string {
		if t == nil {
			return "-"
		}
		return t.Format("2006-01-02")
	}
	return format(r.Start) + ":" + format(r.End)
}
