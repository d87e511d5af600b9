package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToEntityType maps URL path segments to entity types
var pathToEntityType = map[string]string{
	"products":        models.EntityTypeProduct,
	"categories":      models.EntityTypeCategory,
	"suppliers":       models.EntityTypeSupplier,
	"customers":       models.EntityTypeCustomer,
	"locations":       models.EntityTypeLocation,
	"batches":         models.EntityTypeBatch,
	"sales":           models.EntityTypeSale,
	"purchase-orders": models.EntityTypePurchaseOrder,
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// activityFeedCache holds the result cache so a freshly written log entry
// shows up in the feed immediately instead of waiting out the short TTL
var activityFeedCache *cache.ResultCache

// InitActivityLogging wires the result cache at startup
func InitActivityLogging(rc *cache.ResultCache) {
	activityFeedCache = rc
}

func invalidateActivityFeed() {
	if activityFeedCache != nil {
		activityFeedCache.Invalidate(cache.TagActivityLog)
	}
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records tenant mutations automatically.
// Must be used AFTER AuthMiddleware (which sets userID).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only non-GET requests are logged
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		tenantID, ok := TenantFromContext(c)
		if !ok {
			log.Printf("[activity-logging] warning: tenant not in context")
			c.Next()
			return
		}

		entityType := extractEntityType(c.Request.URL.Path)
		if entityType == "" {
			c.Next()
			return
		}

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			c.Next()
			return
		}
		action := actionVerb + "_" + entityType

		entityID := c.Param("id")

		// Snapshot the row before updates and deletes
		var before map[string]interface{}
		if c.Request.Method != "POST" && entityID != "" {
			before = fetchEntitySnapshot(tenantID, entityType, entityID)
		}

		c.Next()

		status := "success"
		errMessage := ""
		if c.Writer.Status() >= http.StatusBadRequest {
			status = "failed"
			errMessage = http.StatusText(c.Writer.Status())
		}

		// For creates the handler exposes the new id via context
		if entityID == "" {
			if created, exists := c.Get("createdEntityID"); exists {
				if idStr, ok := created.(string); ok {
					entityID = idStr
				}
			}
		}

		after := before
		if c.Request.Method != "DELETE" && entityID != "" && status == "success" {
			after = fetchEntitySnapshot(tenantID, entityType, entityID)
		}

		changes, err := models.ActivityChanges{Before: before, After: after}.ToJSON()
		if err != nil {
			changes = datatypes.JSON("{}")
		}

		entry := models.ActivityLog{
			UserID:       tenantID,
			Action:       action,
			EntityType:   entityType,
			EntityID:     entityID,
			EntityName:   extractEntityName(after),
			Changes:      changes,
			Status:       status,
			ErrorMessage: errMessage,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}
		if err := config.Gorm.Create(&entry).Error; err != nil {
			log.Printf("[activity-logging] failed to write log entry: %v", err)
			return
		}
		invalidateActivityFeed()
	}
}

func extractEntityType(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if entityType, ok := pathToEntityType[segment]; ok {
			return entityType
		}
	}
	return ""
}

// fetchEntitySnapshot loads the row as a generic map, scoped to the tenant.
// Best effort: a miss just leaves the snapshot empty.
func fetchEntitySnapshot(tenantID uuid.UUID, entityType, entityID string) map[string]interface{} {
	table := tableForEntity(entityType)
	if table == "" {
		return nil
	}

	row := make(map[string]interface{})
	if err := config.Gorm.Table(table).
		Where("user_id = ? AND id = ?", tenantID, entityID).
		Take(&row).Error; err != nil {
		return nil
	}

	// Round-trip through JSON so jsonb columns stay serializable
	raw, err := json.Marshal(row)
	if err != nil {
		return nil
	}
	snapshot := make(map[string]interface{})
	_ = json.Unmarshal(raw, &snapshot)
	return snapshot
}

func tableForEntity(entityType string) string {
	switch entityType {
	case models.EntityTypeProduct:
		return "products"
	case models.EntityTypeCategory:
		return "categories"
	case models.EntityTypeSupplier:
		return "suppliers"
	case models.EntityTypeCustomer:
		return "customers"
	case models.EntityTypeLocation:
		return "locations"
	case models.EntityTypeBatch:
		return "batches"
	case models.EntityTypeSale:
		return "sales"
	case models.EntityTypePurchaseOrder:
		return "purchase_orders"
	}
	return ""
}

func extractEntityName(snapshot map[string]interface{}) string {
	if snapshot == nil {
		return ""
	}
	if name, ok := snapshot["name"].(string); ok {
		return name
	}
	if lot, ok := snapshot["lot_number"].(string); ok {
		return lot
	}
	return ""
}
