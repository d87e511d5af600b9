package services

import (
	"context"
	"testing"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
)

type fakeAlertStore struct {
	products     []models.Product
	listCalls    int
	thresholdSet map[uuid.UUID]*int
}

func (f *fakeAlertStore) AlertingProducts(_ context.Context, _ uuid.UUID) ([]models.Product, error) {
	f.listCalls++
	return f.products, nil
}

func (f *fakeAlertStore) UpdateProductThreshold(_ context.Context, _, productID uuid.UUID, threshold *int) error {
	if f.thresholdSet == nil {
		f.thresholdSet = make(map[uuid.UUID]*int)
	}
	f.thresholdSet[productID] = threshold
	return nil
}

func intPtr(v int) *int { return &v }

func product(name string, qty int, threshold *int) models.Product {
	return models.Product{
		ID:                uuid.Must(uuid.NewV7()),
		Name:              name,
		Quantity:          qty,
		LowStockThreshold: threshold,
	}
}

func TestStockAlertsClassification(t *testing.T) {
	// Ordered by quantity then name, the way the gateway returns them.
	store := &fakeAlertStore{products: []models.Product{
		product("Drill Bits", 0, nil),
		product("Espresso Beans", 5, intPtr(10)),
		product("Filters", 8, intPtr(10)),
	}}
	svc := NewAlertService(store, cache.New())

	alerts, err := svc.StockAlerts(context.Background(), uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want 3", len(alerts))
	}

	tests := []struct {
		idx       int
		alertType string
		severity  string
	}{
		{0, models.AlertOutOfStock, models.SeverityCritical},
		{1, models.AlertLowStock, models.SeverityCritical}, // 5 <= 10*0.5
		{2, models.AlertLowStock, models.SeverityWarning},  // 8 > 10*0.5
	}
	for _, tt := range tests {
		a := alerts[tt.idx]
		if a.AlertType != tt.alertType || a.Severity != tt.severity {
			t.Errorf("alert %d (%s): got %s/%s, want %s/%s",
				tt.idx, a.ProductName, a.AlertType, a.Severity, tt.alertType, tt.severity)
		}
	}
	if alerts[0].CurrentStock != 0 {
		t.Errorf("first alert should be the out-of-stock product, got stock %d", alerts[0].CurrentStock)
	}
}

func TestStockAlertsAreCached(t *testing.T) {
	store := &fakeAlertStore{products: []models.Product{product("Beans", 0, nil)}}
	svc := NewAlertService(store, cache.New())
	tenant := uuid.Must(uuid.NewV7())

	for i := 0; i < 3; i++ {
		if _, err := svc.StockAlerts(context.Background(), tenant); err != nil {
			t.Fatal(err)
		}
	}
	if store.listCalls != 1 {
		t.Fatalf("store queried %d times, want 1", store.listCalls)
	}
}

func TestAlertSummary(t *testing.T) {
	store := &fakeAlertStore{products: []models.Product{
		product("A", 0, nil),
		product("B", 5, intPtr(10)), // critical low stock
		product("C", 8, intPtr(10)), // warning low stock
	}}
	svc := NewAlertService(store, cache.New())

	summary, err := svc.AlertSummary(context.Background(), uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatal(err)
	}

	want := models.StockAlertSummary{
		TotalAlerts:    3,
		CriticalAlerts: 2,
		WarningAlerts:  1,
		OutOfStock:     1,
		LowStock:       2,
	}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

func TestReorderRecommendationFormula(t *testing.T) {
	store := &fakeAlertStore{products: []models.Product{
		product("Beans", 3, intPtr(10)),
	}}
	svc := NewAlertService(store, cache.New())

	recs, err := svc.ReorderRecommendations(context.Background(), uuid.Must(uuid.NewV7()), DefaultDaysOfStock)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}

	r := recs[0]
	if r.TargetStock != 20 {
		t.Errorf("target stock = %d, want 20", r.TargetStock)
	}
	if r.RecommendedOrderQuantity != 17 {
		t.Errorf("recommended order quantity = %d, want 17", r.RecommendedOrderQuantity)
	}
	if r.EstimatedDaysRemaining != 2 {
		t.Errorf("estimated days remaining = %d, want 2", r.EstimatedDaysRemaining)
	}
	if r.AlertType != models.AlertRestockNeeded || r.Severity != models.SeverityInfo {
		t.Errorf("got %s/%s, want restock_needed/info", r.AlertType, r.Severity)
	}
}

func TestReorderDefaultsWithoutThreshold(t *testing.T) {
	store := &fakeAlertStore{products: []models.Product{
		product("Beans", 0, nil),
	}}
	svc := NewAlertService(store, cache.New())

	recs, err := svc.ReorderRecommendations(context.Background(), uuid.Must(uuid.NewV7()), DefaultDaysOfStock)
	if err != nil {
		t.Fatal(err)
	}

	r := recs[0]
	if r.TargetStock != 10 {
		t.Errorf("target stock = %d, want 10", r.TargetStock)
	}
	if r.RecommendedOrderQuantity != 10 { // max(10-0, 5)
		t.Errorf("recommended order quantity = %d, want 10", r.RecommendedOrderQuantity)
	}
	if r.EstimatedDaysRemaining != 0 {
		t.Errorf("estimated days remaining = %d, want 0", r.EstimatedDaysRemaining)
	}
}

func TestReorderSortedByUrgency(t *testing.T) {
	store := &fakeAlertStore{products: []models.Product{
		product("Comfortable", 8, intPtr(10)), // (8*7)/10 = 5 days
		product("Urgent", 1, intPtr(10)),      // (1*7)/10 = 0 days
		product("Soon", 3, intPtr(10)),        // 2 days
	}}
	svc := NewAlertService(store, cache.New())

	recs, err := svc.ReorderRecommendations(context.Background(), uuid.Must(uuid.NewV7()), DefaultDaysOfStock)
	if err != nil {
		t.Fatal(err)
	}

	wantOrder := []string{"Urgent", "Soon", "Comfortable"}
	for i, want := range wantOrder {
		if recs[i].ProductName != want {
			t.Errorf("recs[%d] = %s, want %s", i, recs[i].ProductName, want)
		}
	}
}

func TestSetAlertThresholdInvalidatesAlerts(t *testing.T) {
	store := &fakeAlertStore{products: []models.Product{product("Beans", 0, nil)}}
	rc := cache.New()
	svc := NewAlertService(store, rc)
	tenant := uuid.Must(uuid.NewV7())

	if _, err := svc.StockAlerts(context.Background(), tenant); err != nil {
		t.Fatal(err)
	}
	if store.listCalls != 1 {
		t.Fatalf("priming call count = %d", store.listCalls)
	}

	productID := uuid.Must(uuid.NewV7())
	if err := svc.SetAlertThreshold(context.Background(), tenant, productID, intPtr(15)); err != nil {
		t.Fatal(err)
	}
	if got := store.thresholdSet[productID]; got == nil || *got != 15 {
		t.Fatalf("threshold not written: %v", got)
	}

	// The alerts entry is tagged products, so the mutation must force a
	// recompute even within TTL.
	if _, err := svc.StockAlerts(context.Background(), tenant); err != nil {
		t.Fatal(err)
	}
	if store.listCalls != 2 {
		t.Fatalf("store queried %d times after invalidation, want 2", store.listCalls)
	}
}

func TestClearThreshold(t *testing.T) {
	store := &fakeAlertStore{}
	svc := NewAlertService(store, cache.New())
	productID := uuid.Must(uuid.NewV7())

	if err := svc.SetAlertThreshold(context.Background(), uuid.Must(uuid.NewV7()), productID, nil); err != nil {
		t.Fatal(err)
	}
	if got, ok := store.thresholdSet[productID]; !ok || got != nil {
		t.Fatalf("clearing threshold should write nil, got %v (ok=%v)", got, ok)
	}
}
