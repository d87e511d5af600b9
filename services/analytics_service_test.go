package services

import (
	"context"
	"math"
	"testing"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
)

type fakeAnalyticsStore struct {
	productCount int64
	value        float64
	lowStock     int64
	outOfStock   int64
	byCategory   []gateway.CategoryValue
	names        map[uuid.UUID]string

	saleCount int64
	revenue   float64
	recent    []models.Sale

	calls int
}

func (f *fakeAnalyticsStore) CountProducts(_ context.Context, _ uuid.UUID) (int64, error) {
	f.calls++
	return f.productCount, nil
}

func (f *fakeAnalyticsStore) InventoryValue(_ context.Context, _ uuid.UUID) (float64, error) {
	return f.value, nil
}

func (f *fakeAnalyticsStore) CountOutOfStock(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.outOfStock, nil
}

func (f *fakeAnalyticsStore) CountAtOrBelowThreshold(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.lowStock, nil
}

func (f *fakeAnalyticsStore) ValueByCategory(_ context.Context, _ uuid.UUID) ([]gateway.CategoryValue, error) {
	return f.byCategory, nil
}

func (f *fakeAnalyticsStore) CategoryNames(_ context.Context, _ uuid.UUID) (map[uuid.UUID]string, error) {
	return f.names, nil
}

func (f *fakeAnalyticsStore) CountSales(_ context.Context, _ uuid.UUID, _ gateway.DateRange) (int64, error) {
	f.calls++
	return f.saleCount, nil
}

func (f *fakeAnalyticsStore) SalesRevenue(_ context.Context, _ uuid.UUID, _ gateway.DateRange) (float64, error) {
	return f.revenue, nil
}

func (f *fakeAnalyticsStore) RecentSales(_ context.Context, _ uuid.UUID, _ gateway.DateRange, _ int) ([]models.Sale, error) {
	return f.recent, nil
}

func TestInventoryAnalyticsEmptyTenant(t *testing.T) {
	store := &fakeAnalyticsStore{names: map[uuid.UUID]string{}}
	svc := NewAnalyticsService(store, cache.New())

	got, err := svc.InventoryAnalytics(context.Background(), uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatal(err)
	}

	if got.TotalProducts != 0 || got.TotalValue != 0 || got.LowStockCount != 0 || got.OutOfStockCount != 0 {
		t.Fatalf("empty tenant should produce zeros, got %+v", got)
	}
	if got.ValueByCategory == nil {
		t.Fatal("ValueByCategory must be an empty map, not nil")
	}
	if len(got.ValueByCategory) != 0 {
		t.Fatalf("empty tenant should have no category values, got %v", got.ValueByCategory)
	}
}

func TestInventoryAnalyticsValueByCategory(t *testing.T) {
	beverages := uuid.Must(uuid.NewV7())
	snacks := uuid.Must(uuid.NewV7())
	orphan := uuid.Must(uuid.NewV7()) // grouped id with no matching category row

	store := &fakeAnalyticsStore{
		productCount: 7,
		value:        175.25,
		lowStock:     2,
		outOfStock:   1,
		byCategory: []gateway.CategoryValue{
			{CategoryID: &beverages, Value: 100.00},
			{CategoryID: &snacks, Value: 50.00},
			{CategoryID: nil, Value: 15.25},
			{CategoryID: &orphan, Value: 10.00},
		},
		names: map[uuid.UUID]string{
			beverages: "Beverages",
			snacks:    "Snacks",
		},
	}
	svc := NewAnalyticsService(store, cache.New())

	got, err := svc.InventoryAnalytics(context.Background(), uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatal(err)
	}

	if got.ValueByCategory["Beverages"] != 100.00 || got.ValueByCategory["Snacks"] != 50.00 {
		t.Fatalf("category mapping wrong: %v", got.ValueByCategory)
	}
	// Null and unmatched category ids both collapse into the fallback label.
	if got.ValueByCategory[UncategorizedLabel] != 25.25 {
		t.Fatalf("Uncategorized = %v, want 25.25", got.ValueByCategory[UncategorizedLabel])
	}

	var sum float64
	for _, v := range got.ValueByCategory {
		sum += v
	}
	if math.Abs(sum-got.TotalValue) > 0.01 {
		t.Fatalf("category values sum to %v, total value is %v", sum, got.TotalValue)
	}
}

func TestInventoryAnalyticsCachedAndInvalidated(t *testing.T) {
	store := &fakeAnalyticsStore{names: map[uuid.UUID]string{}}
	rc := cache.New()
	svc := NewAnalyticsService(store, rc)
	tenant := uuid.Must(uuid.NewV7())

	if _, err := svc.InventoryAnalytics(context.Background(), tenant); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.InventoryAnalytics(context.Background(), tenant); err != nil {
		t.Fatal(err)
	}
	if store.calls != 1 {
		t.Fatalf("store queried %d times for cached analytics, want 1", store.calls)
	}

	// A successful product mutation invalidates the products tag, which the
	// analytics entry carries: the next read must recompute within TTL.
	rc.Invalidate(cache.TagProducts)

	if _, err := svc.InventoryAnalytics(context.Background(), tenant); err != nil {
		t.Fatal(err)
	}
	if store.calls != 2 {
		t.Fatalf("store queried %d times after products invalidation, want 2", store.calls)
	}
}

func TestInventoryAnalyticsTenantIsolation(t *testing.T) {
	store := &fakeAnalyticsStore{names: map[uuid.UUID]string{}}
	svc := NewAnalyticsService(store, cache.New())

	// Distinct tenants must never share a cache entry.
	if _, err := svc.InventoryAnalytics(context.Background(), uuid.Must(uuid.NewV7())); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.InventoryAnalytics(context.Background(), uuid.Must(uuid.NewV7())); err != nil {
		t.Fatal(err)
	}
	if store.calls != 2 {
		t.Fatalf("two tenants produced %d computations, want 2", store.calls)
	}
}

func TestSalesAnalyticsEmptyRange(t *testing.T) {
	store := &fakeAnalyticsStore{}
	svc := NewAnalyticsService(store, cache.New())

	got, err := svc.SalesAnalytics(context.Background(), uuid.Must(uuid.NewV7()), gateway.DateRange{})
	if err != nil {
		t.Fatal(err)
	}

	if got.TotalSales != 0 || got.TotalRevenue != 0 {
		t.Fatalf("empty range should produce zeros, got %+v", got)
	}
	if got.RecentSales == nil {
		t.Fatal("RecentSales must be an empty slice, not nil")
	}
}

func TestSalesAnalyticsAggregates(t *testing.T) {
	sale := models.Sale{
		ID:          uuid.Must(uuid.NewV7()),
		TotalAmount: 37.00,
		Items: []models.SaleItem{
			{ProductName: "Espresso Beans 1kg", Quantity: 2, UnitPrice: 18.50},
		},
	}
	store := &fakeAnalyticsStore{
		saleCount: 4,
		revenue:   120.00,
		recent:    []models.Sale{sale},
	}
	svc := NewAnalyticsService(store, cache.New())

	got, err := svc.SalesAnalytics(context.Background(), uuid.Must(uuid.NewV7()), gateway.DateRange{})
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalSales != 4 || got.TotalRevenue != 120.00 {
		t.Fatalf("aggregates wrong: %+v", got)
	}
	if len(got.RecentSales) != 1 || len(got.RecentSales[0].Items) != 1 {
		t.Fatalf("recent sales should carry line items: %+v", got.RecentSales)
	}
}
