package gateway

import (
	"context"

	"github.com/bry-ly/Velos-Inve-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryValue is one groupBy row: stock value per category, nil CategoryID
// for uncategorized products.
type CategoryValue struct {
	CategoryID *uuid.UUID
	Value      float64
}

func (g *Gateway) CountProducts(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := g.Tenant(ctx, tenantID).Model(&models.Product{}).Count(&total).Error
	return total, wrap("count products", err)
}

// InventoryValue computes Σ price × quantity over the tenant's products
func (g *Gateway) InventoryValue(ctx context.Context, tenantID uuid.UUID) (float64, error) {
	var value float64
	err := g.Tenant(ctx, tenantID).Model(&models.Product{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&value).Error
	return value, wrap("inventory value", err)
}

func (g *Gateway) CountOutOfStock(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := g.Tenant(ctx, tenantID).Model(&models.Product{}).
		Where("quantity = 0").
		Count(&total).Error
	return total, wrap("count out of stock", err)
}

// CountAtOrBelowThreshold counts products whose quantity sits at or below
// their own low-stock threshold. The two-column comparison is raw SQL on the
// pgx pool; it is a named gateway op so the store stays swappable.
func (g *Gateway) CountAtOrBelowThreshold(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var total int64
	err := g.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM products
		WHERE user_id = $1
		  AND low_stock_threshold IS NOT NULL
		  AND quantity <= low_stock_threshold
	`, tenantID).Scan(&total)
	return total, wrap("count at or below threshold", err)
}

// ValueByCategory groups Σ price × quantity by category id
func (g *Gateway) ValueByCategory(ctx context.Context, tenantID uuid.UUID) ([]CategoryValue, error) {
	rows := make([]CategoryValue, 0)
	err := g.Tenant(ctx, tenantID).Model(&models.Product{}).
		Select("category_id, COALESCE(SUM(price * quantity), 0) AS value").
		Group("category_id").
		Scan(&rows).Error
	return rows, wrap("value by category", err)
}

// CategoryNames returns id → name for the tenant's categories
func (g *Gateway) CategoryNames(ctx context.Context, tenantID uuid.UUID) (map[uuid.UUID]string, error) {
	var categories []models.Category
	if err := g.Tenant(ctx, tenantID).
		Select("id, name").
		Find(&categories).Error; err != nil {
		return nil, wrap("category names", err)
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names, nil
}

// AlertingProducts selects products that are out of stock or at/below their
// threshold, ordered by quantity then name so alert pages paginate stably.
func (g *Gateway) AlertingProducts(ctx context.Context, tenantID uuid.UUID) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := g.Tenant(ctx, tenantID).
		Where("quantity = 0 OR (low_stock_threshold IS NOT NULL AND quantity <= low_stock_threshold)").
		Order("quantity ASC, name ASC").
		Find(&products).Error
	return products, wrap("alerting products", err)
}

// FindProducts lists a page of products matching the filter
func (g *Gateway) FindProducts(ctx context.Context, tenantID uuid.UUID, filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	base := filter.apply(g.Tenant(ctx, tenantID).Model(&models.Product{}))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, wrap("count filtered products", err)
	}

	products := make([]models.Product, 0)
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name")
		}).
		Find(&products).Error
	return products, total, wrap("find products", err)
}

// ProductByID fetches one product owned by the tenant; a foreign or missing
// id is the same ErrNotFound either way.
func (g *Gateway) ProductByID(ctx context.Context, tenantID, productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := g.Tenant(ctx, tenantID).
		Preload("Category", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name")
		}).
		Preload("Supplier", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, user_id, name")
		}).
		First(&product, "products.id = ?", productID).Error
	if err != nil {
		return nil, wrap("product by id", err)
	}
	return &product, nil
}

// UpdateProductThreshold sets or clears the low-stock threshold. nil keeps
// the product eligible for out-of-stock alerts only.
func (g *Gateway) UpdateProductThreshold(ctx context.Context, tenantID, productID uuid.UUID, threshold *int) error {
	res := g.Tenant(ctx, tenantID).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("low_stock_threshold", threshold)
	if res.Error != nil {
		return wrap("update threshold", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustStock applies a signed quantity delta and writes the movement row in
// one transaction. A delta that would push quantity below zero fails.
func (g *Gateway) AdjustStock(ctx context.Context, tenantID, productID uuid.UUID, change int, movementType, reason string) (*models.Product, error) {
	var product models.Product
	err := g.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", tenantID).
			First(&product, "id = ?", productID).Error; err != nil {
			return err
		}
		newQty := product.Quantity + change
		if newQty < 0 {
			return ErrInsufficientStock
		}
		if err := tx.Model(&product).Update("quantity", newQty).Error; err != nil {
			return err
		}
		product.Quantity = newQty
		return tx.Create(&models.StockMovement{
			UserID:    tenantID,
			ProductID: productID,
			Change:    change,
			Type:      movementType,
			Reason:    reason,
		}).Error
	})
	if err != nil {
		return nil, wrapKeep("adjust stock", err)
	}
	return &product, nil
}

// ProductMovements lists the most recent stock movements for a product
func (g *Gateway) ProductMovements(ctx context.Context, tenantID, productID uuid.UUID, limit int) ([]models.StockMovement, error) {
	movements := make([]models.StockMovement, 0)
	err := g.Tenant(ctx, tenantID).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, wrap("product movements", err)
}

// ProductReferencedBySales reports whether any historical sale item points at
// the product. Such products are soft-referenced and must not be hard-deleted.
func (g *Gateway) ProductReferencedBySales(ctx context.Context, tenantID, productID uuid.UUID) (bool, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&models.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.user_id = ? AND sale_items.product_id = ?", tenantID, productID).
		Count(&total).Error
	return total > 0, wrap("product sale references", err)
}
