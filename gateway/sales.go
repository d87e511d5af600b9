package gateway

import (
	"context"

	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (g *Gateway) CountSales(ctx context.Context, tenantID uuid.UUID, r DateRange) (int64, error) {
	var total int64
	err := r.apply(g.Tenant(ctx, tenantID).Model(&models.Sale{}), "created_at").
		Count(&total).Error
	return total, wrap("count sales", err)
}

func (g *Gateway) SalesRevenue(ctx context.Context, tenantID uuid.UUID, r DateRange) (float64, error) {
	var revenue float64
	err := r.apply(g.Tenant(ctx, tenantID).Model(&models.Sale{}), "created_at").
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, wrap("sales revenue", err)
}

// RecentSales lists the most recent sales in the range with their line items
func (g *Gateway) RecentSales(ctx context.Context, tenantID uuid.UUID, r DateRange, limit int) ([]models.Sale, error) {
	sales := make([]models.Sale, 0)
	err := r.apply(g.Tenant(ctx, tenantID), "created_at").
		Order("created_at DESC").
		Limit(limit).
		Preload("Items").
		Find(&sales).Error
	return sales, wrap("recent sales", err)
}

// FindSales lists a page of sales, newest first
func (g *Gateway) FindSales(ctx context.Context, tenantID uuid.UUID, r DateRange, page, limit int) ([]models.Sale, int64, error) {
	base := r.apply(g.Tenant(ctx, tenantID).Model(&models.Sale{}), "created_at")

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, wrap("count sales page", err)
	}

	sales := make([]models.Sale, 0)
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Items").
		Preload("Customer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name")
		}).
		Find(&sales).Error
	return sales, total, wrap("find sales", err)
}

// CreateSale records a sale, decrements each product's quantity and writes
// the stock movements, all in one transaction. Tenant ownership of every
// referenced product is verified inside the same transaction.
func (g *Gateway) CreateSale(ctx context.Context, tenantID uuid.UUID, req models.SaleRequest) (*models.Sale, error) {
	var sale models.Sale
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		if req.CustomerID != nil {
			var owned int64
			if err := tx.Model(&models.Customer{}).
				Where("user_id = ? AND id = ?", tenantID, *req.CustomerID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return ErrNotFound
			}
		}

		sale = models.Sale{
			UserID:     tenantID,
			CustomerID: req.CustomerID,
			Note:       req.Note,
		}

		var total float64
		items := make([]models.SaleItem, 0, len(req.Items))
		for _, item := range req.Items {
			var product models.Product
			if err := tx.Where("user_id = ?", tenantID).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}
			if product.Quantity < item.Quantity {
				return ErrInsufficientStock
			}
			if err := tx.Model(&product).
				Update("quantity", product.Quantity-item.Quantity).Error; err != nil {
				return err
			}
			items = append(items, models.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			})
			total += product.Price * float64(item.Quantity)
		}
		sale.TotalAmount = total

		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		sale.Items = items

		movements := make([]models.StockMovement, 0, len(items))
		for _, item := range items {
			movements = append(movements, models.StockMovement{
				UserID:    tenantID,
				ProductID: item.ProductID,
				Change:    -item.Quantity,
				Type:      models.MovementSale,
				Reason:    "sale " + sale.ID.String(),
			})
		}
		return tx.Create(&movements).Error
	})
	if err != nil {
		return nil, wrapKeep("create sale", err)
	}
	return &sale, nil
}
