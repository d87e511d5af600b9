package product_controller

import (
	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/services"
)

var (
	gw           *gateway.Gateway
	resultCache  *cache.ResultCache
	alertService *services.AlertService
)

// Init wires the package's dependencies at startup
func Init(g *gateway.Gateway, rc *cache.ResultCache, alerts *services.AlertService) {
	gw = g
	resultCache = rc
	alertService = alerts
}

// invalidateProductReads drops every cached read a product mutation can
// stale. Callers invoke it only after the write has committed.
func invalidateProductReads() {
	resultCache.Invalidate(cache.TagProducts, cache.TagAnalytics)
}
