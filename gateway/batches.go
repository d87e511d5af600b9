package gateway

import (
	"context"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindBatches lists a tenant's batches, soonest expiry first. When
// expiringWithin is non-zero only batches expiring inside that window
// are returned.
func (g *Gateway) FindBatches(ctx context.Context, tenantID uuid.UUID, productID *uuid.UUID, expiringWithin time.Duration) ([]models.Batch, error) {
	q := g.Tenant(ctx, tenantID).
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name, sku")
		}).
		Preload("Location")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}
	if expiringWithin > 0 {
		q = q.Where("expiry_date IS NOT NULL AND expiry_date <= ?", time.Now().Add(expiringWithin))
	}

	batches := make([]models.Batch, 0)
	err := q.Order("expiry_date ASC NULLS LAST, created_at ASC").Find(&batches).Error
	return batches, wrap("find batches", err)
}

// CreateBatch records a batch and folds its quantity into the product's
// on-hand count, with a stock movement, in one transaction.
func (g *Gateway) CreateBatch(ctx context.Context, tenantID uuid.UUID, req models.BatchRequest) (*models.Batch, error) {
	var batch models.Batch
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("user_id = ?", tenantID).
			First(&product, "id = ?", req.ProductID).Error; err != nil {
			return err
		}
		if req.LocationID != nil {
			var owned int64
			if err := tx.Model(&models.Location{}).
				Where("user_id = ? AND id = ?", tenantID, *req.LocationID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return ErrNotFound
			}
		}

		batch = models.Batch{
			UserID:     tenantID,
			ProductID:  req.ProductID,
			LocationID: req.LocationID,
			LotNumber:  req.LotNumber,
			Quantity:   req.Quantity,
			ExpiryDate: req.ExpiryDate,
		}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
		if req.Quantity == 0 {
			return nil
		}

		if err := tx.Model(&product).
			Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
			return err
		}
		return tx.Create(&models.StockMovement{
			UserID:    tenantID,
			ProductID: product.ID,
			Change:    req.Quantity,
			Type:      models.MovementBatch,
			Reason:    "batch " + batch.LotNumber + " received",
		}).Error
	})
	if err != nil {
		return nil, wrapKeep("create batch", err)
	}
	return &batch, nil
}

// UpdateBatch edits a batch. A quantity change is applied to the product
// as a delta so the on-hand count stays in step with its batches.
func (g *Gateway) UpdateBatch(ctx context.Context, tenantID, batchID uuid.UUID, req models.UpdateBatchRequest) (*models.Batch, error) {
	var batch models.Batch
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", tenantID).
			First(&batch, "id = ?", batchID).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if req.LocationID != nil {
			var owned int64
			if err := tx.Model(&models.Location{}).
				Where("user_id = ? AND id = ?", tenantID, *req.LocationID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return ErrNotFound
			}
			updates["location_id"] = *req.LocationID
		}
		if req.LotNumber != nil {
			updates["lot_number"] = *req.LotNumber
		}
		if req.ExpiryDate != nil {
			updates["expiry_date"] = *req.ExpiryDate
		}

		if req.Quantity != nil && *req.Quantity != batch.Quantity {
			delta := *req.Quantity - batch.Quantity
			var product models.Product
			if err := tx.Where("user_id = ?", tenantID).
				First(&product, "id = ?", batch.ProductID).Error; err != nil {
				return err
			}
			if product.Quantity+delta < 0 {
				return ErrInsufficientStock
			}
			if err := tx.Model(&product).
				Update("quantity", product.Quantity+delta).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.StockMovement{
				UserID:    tenantID,
				ProductID: product.ID,
				Change:    delta,
				Type:      models.MovementBatch,
				Reason:    "batch " + batch.LotNumber + " adjusted",
			}).Error; err != nil {
				return err
			}
			updates["quantity"] = *req.Quantity
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&batch).Updates(updates).Error
	})
	if err != nil {
		return nil, wrapKeep("update batch", err)
	}
	return &batch, nil
}

// DeleteBatch removes a batch and subtracts its remaining quantity from
// the product, floored at zero.
func (g *Gateway) DeleteBatch(ctx context.Context, tenantID, batchID uuid.UUID) error {
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		var batch models.Batch
		if err := tx.Where("user_id = ?", tenantID).
			First(&batch, "id = ?", batchID).Error; err != nil {
			return err
		}

		if batch.Quantity > 0 {
			var product models.Product
			if err := tx.Where("user_id = ?", tenantID).
				First(&product, "id = ?", batch.ProductID).Error; err != nil {
				return err
			}
			remove := batch.Quantity
			if remove > product.Quantity {
				remove = product.Quantity
			}
			if remove > 0 {
				if err := tx.Model(&product).
					Update("quantity", product.Quantity-remove).Error; err != nil {
					return err
				}
				if err := tx.Create(&models.StockMovement{
					UserID:    tenantID,
					ProductID: product.ID,
					Change:    -remove,
					Type:      models.MovementBatch,
					Reason:    "batch " + batch.LotNumber + " removed",
				}).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&batch).Error
	})
	return wrapKeep("delete batch", err)
}
