package gateway

import (
	"context"

	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
)

// FindActivity lists a page of the tenant's activity feed, newest first
func (g *Gateway) FindActivity(ctx context.Context, tenantID uuid.UUID, filter ActivityFilter, page, limit int) ([]models.ActivityLog, int64, error) {
	base := filter.apply(g.Tenant(ctx, tenantID).Model(&models.ActivityLog{}))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, wrap("count activity", err)
	}

	entries := make([]models.ActivityLog, 0)
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&entries).Error
	return entries, total, wrap("find activity", err)
}
