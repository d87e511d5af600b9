package cache

import (
	"testing"
	"time"
)

func TestGetOrComputeMemoizes(t *testing.T) {
	c := New()

	calls := 0
	compute := func() (any, error) {
		calls++
		return 42, nil
	}

	v1, err := c.GetOrCompute("analytics:inventory:t1", []string{TagProducts, TagAnalytics}, time.Minute, compute)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := c.GetOrCompute("analytics:inventory:t1", []string{TagProducts, TagAnalytics}, time.Minute, compute)
	if err != nil {
		t.Fatal(err)
	}

	if v1.(int) != 42 || v2.(int) != 42 {
		t.Fatalf("unexpected values: %v, %v", v1, v2)
	}
	if calls != 1 {
		t.Fatalf("computeFn called %d times, want 1", calls)
	}
}

func TestInvalidateByTagForcesRecompute(t *testing.T) {
	c := New()

	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrCompute("k", []string{TagProducts, TagAnalytics}, time.Hour, compute); err != nil {
		t.Fatal(err)
	}

	// Invalidating a tag the entry carries must beat the TTL.
	c.Invalidate(TagProducts)

	v, err := c.GetOrCompute("k", []string{TagProducts, TagAnalytics}, time.Hour, compute)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("computeFn called %d times after invalidation, want 2", calls)
	}
	if v.(int) != 2 {
		t.Fatalf("got stale value %v", v)
	}
}

func TestInvalidateLeavesUnrelatedTagsAlone(t *testing.T) {
	c := New()

	calls := 0
	if _, err := c.GetOrCompute("suppliers:t1", []string{TagSuppliers}, time.Hour, func() (any, error) {
		calls++
		return "suppliers", nil
	}); err != nil {
		t.Fatal(err)
	}

	c.Invalidate(TagProducts)

	if _, err := c.GetOrCompute("suppliers:t1", []string{TagSuppliers}, time.Hour, func() (any, error) {
		calls++
		return "suppliers", nil
	}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("unrelated entry recomputed, calls=%d", calls)
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New()

	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrCompute("k", []string{TagAnalytics}, 10*time.Millisecond, compute); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := c.GetOrCompute("k", []string{TagAnalytics}, 10*time.Millisecond, compute); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Fatalf("expired entry served, calls=%d", calls)
	}
}

func TestComputeErrorNotCached(t *testing.T) {
	c := New()

	calls := 0
	if _, err := c.GetOrCompute("k", nil, time.Minute, func() (any, error) {
		calls++
		return nil, errBoom
	}); err == nil {
		t.Fatal("expected error")
	}
	if c.Len() != 0 {
		t.Fatalf("failed compute was stored, len=%d", c.Len())
	}

	v, err := c.GetOrCompute("k", nil, time.Minute, func() (any, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "ok" || calls != 2 {
		t.Fatalf("recovery compute not run, v=%v calls=%d", v, calls)
	}
}

func TestThroughTyped(t *testing.T) {
	c := New()

	got, err := Through(c, "typed", []string{TagCategories}, time.Minute, func() (map[string]float64, error) {
		return map[string]float64{"Beverages": 120.50}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got["Beverages"] != 120.50 {
		t.Fatalf("unexpected value: %v", got)
	}
}

type boom struct{}

func (boom) Error() string { return "boom" }

var errBoom = boom{}
