package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrAlreadyReceived reports a second receipt of the same purchase order
var ErrAlreadyReceived = errors.New("purchase order already received")

// CreatePurchaseOrder verifies tenant ownership of the supplier and every
// product, then writes the order and its items atomically.
func (g *Gateway) CreatePurchaseOrder(ctx context.Context, tenantID uuid.UUID, req models.PurchaseOrderRequest) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		if req.SupplierID != nil {
			var owned int64
			if err := tx.Model(&models.Supplier{}).
				Where("user_id = ? AND id = ?", tenantID, *req.SupplierID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return ErrNotFound
			}
		}

		status := req.Status
		if status == "" {
			status = models.PurchaseOrderDraft
		}
		po = models.PurchaseOrder{
			UserID:     tenantID,
			SupplierID: req.SupplierID,
			Status:     status,
		}

		var total float64
		items := make([]models.PurchaseOrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			var owned int64
			if err := tx.Model(&models.Product{}).
				Where("user_id = ? AND id = ?", tenantID, item.ProductID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return ErrNotFound
			}
			items = append(items, models.PurchaseOrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
			})
			total += item.UnitCost * float64(item.Quantity)
		}
		po.TotalCost = total

		if err := tx.Create(&po).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseOrderID = po.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		po.Items = items
		return nil
	})
	if err != nil {
		return nil, wrapKeep("create purchase order", err)
	}
	return &po, nil
}

// ReceivePurchaseOrder marks the order received and increments each line's
// product quantity, with movement rows, in one transaction.
func (g *Gateway) ReceivePurchaseOrder(ctx context.Context, tenantID, orderID uuid.UUID) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", tenantID).
			Preload("Items").
			First(&po, "id = ?", orderID).Error; err != nil {
			return err
		}
		if po.Status == models.PurchaseOrderReceived {
			return ErrAlreadyReceived
		}

		now := time.Now().UTC()
		if err := tx.Model(&po).Updates(map[string]any{
			"status":      models.PurchaseOrderReceived,
			"received_at": now,
		}).Error; err != nil {
			return err
		}
		po.Status = models.PurchaseOrderReceived
		po.ReceivedAt = &now

		for _, item := range po.Items {
			if err := tx.Model(&models.Product{}).
				Where("user_id = ? AND id = ?", tenantID, item.ProductID).
				Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.StockMovement{
				UserID:    tenantID,
				ProductID: item.ProductID,
				Change:    item.Quantity,
				Type:      models.MovementPurchase,
				Reason:    "purchase order " + po.ID.String(),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyReceived) {
			return nil, err
		}
		return nil, wrapKeep("receive purchase order", err)
	}
	return &po, nil
}

// FindPurchaseOrders lists a page of orders, newest first
func (g *Gateway) FindPurchaseOrders(ctx context.Context, tenantID uuid.UUID, status string, page, limit int) ([]models.PurchaseOrder, int64, error) {
	base := g.Tenant(ctx, tenantID).Model(&models.PurchaseOrder{})
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, wrap("count purchase orders", err)
	}

	orders := make([]models.PurchaseOrder, 0)
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Items").
		Preload("Supplier", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name")
		}).
		Find(&orders).Error
	return orders, total, wrap("find purchase orders", err)
}
