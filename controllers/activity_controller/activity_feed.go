package activity_controller

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/cache"
	"github.com/bry-ly/Velos-Inve-sub001/config"
	"github.com/bry-ly/Velos-Inve-sub001/gateway"
	"github.com/bry-ly/Velos-Inve-sub001/middleware"
	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/gin-gonic/gin"
)

var (
	gw          *gateway.Gateway
	resultCache *cache.ResultCache
)

// Init wires the package's dependencies at startup
func Init(g *gateway.Gateway, rc *cache.ResultCache) {
	gw = g
	resultCache = rc
}

type activityPage struct {
	Entries []models.ActivityLog `json:"entries"`
	Total   int64                `json:"total"`
}

// GetActivityFeed godoc
// @Summary Get the activity feed
// @Description Paginated audit trail of mutations, newest first
// @Tags Activity
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param action query string false "Filter by action verb" Enums(created, updated, deleted)
// @Param entity_type query string false "Filter by entity type"
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/activity [get]
func GetActivityFeed(c *gin.Context) {
	tenantID, ok := middleware.TenantFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var filter gateway.ActivityFilter
	if action := c.Query("action"); action != "" {
		filter.Action = &action
	}
	if entityType := c.Query("entity_type"); entityType != "" {
		filter.EntityType = &entityType
	}
	if raw := c.Query("startDate"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "startDate must be YYYY-MM-DD"))
			return
		}
		filter.Range.Start = &start
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "endDate must be YYYY-MM-DD"))
			return
		}
		filter.Range.End = &end
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	key := fmt.Sprintf("activity:feed:%s:p%d:l%d:%s:%s:%s:%s",
		tenantID, page, limit,
		c.Query("action"), c.Query("entity_type"), c.Query("startDate"), c.Query("endDate"))
	result, err := cache.Through(resultCache, key, []string{cache.TagActivityLog}, cache.TTLActivityFeed, func() (activityPage, error) {
		entries, total, err := gw.FindActivity(ctx, tenantID, filter, page, limit)
		return activityPage{Entries: entries, Total: total}, err
	})
	if err != nil {
		log.Printf("[activity.feed] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity feed"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(result.Total),
		TotalPages: int(math.Ceil(float64(result.Total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity feed fetched successfully", result.Entries, meta))
}
