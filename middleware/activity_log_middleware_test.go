package middleware

import (
	"testing"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/models"
)

func TestActivityLogWriteInvalidatesFeedCache(t *testing.T) {
	rc := cache.New()
	InitActivityLogging(rc)
	defer InitActivityLogging(nil)

	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	if _, err := rc.GetOrCompute("activity:feed:t1", []string{cache.TagActivityLog}, time.Minute, compute); err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if _, err := rc.GetOrCompute("activity:feed:t1", []string{cache.TagActivityLog}, time.Minute, compute); err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected cached feed before invalidation, compute ran %d times", calls)
	}

	invalidateActivityFeed()

	got, err := rc.GetOrCompute("activity:feed:t1", []string{cache.TagActivityLog}, time.Minute, compute)
	if err != nil {
		t.Fatalf("GetOrCompute: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected recompute after a log write, compute ran %d times", calls)
	}
	if got != 2 {
		t.Errorf("got stale value %v after invalidation", got)
	}
}

func TestInvalidateActivityFeedWithoutCache(t *testing.T) {
	InitActivityLogging(nil)

	// Must not panic when the middleware runs before wiring
	invalidateActivityFeed()
}

func TestExtractEntityType(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/api/v1/products", models.EntityTypeProduct},
		{"/api/v1/products/abc-123", models.EntityTypeProduct},
		{"/api/v1/purchase-orders/abc/receive", models.EntityTypePurchaseOrder},
		{"/api/v1/batches/abc", models.EntityTypeBatch},
		{"/api/v1/analytics/inventory", ""},
	}
	for _, tc := range cases {
		if got := extractEntityType(tc.path); got != tc.want {
			t.Errorf("extractEntityType(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestExtractEntityName(t *testing.T) {
	if got := extractEntityName(map[string]interface{}{"name": "Espresso Beans"}); got != "Espresso Beans" {
		t.Errorf("name = %q", got)
	}
	if got := extractEntityName(map[string]interface{}{"lot_number": "LOT-1"}); got != "LOT-1" {
		t.Errorf("lot_number = %q", got)
	}
	if got := extractEntityName(nil); got != "" {
		t.Errorf("nil snapshot = %q", got)
	}
}
