package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de stock. Pasar pool o tx.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// AddStock upsert atómico por (company_id, product_name): suma la cantidad y
// sobrescribe unit_price en el mismo statement, así dos scans concurrentes del
// mismo producto no pierden incrementos. El SKU solo se fija en el insert;
// un artículo existente conserva el suyo.
func (r *InventoryRepo) AddStock(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, company_id, product_name, sku, quantity_on_hand, unit_price, low_stock_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, product_name)
		DO UPDATE SET
			quantity_on_hand = inventory_items.quantity_on_hand + EXCLUDED.quantity_on_hand,
			unit_price = EXCLUDED.unit_price`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.CompanyID, item.ProductName, item.SKU,
		item.QuantityOnHand, item.UnitPrice, item.LowStockThreshold,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory item: %w", err)
	}
	return nil
}

// ListInStock devuelve artículos con stock > 0, del más al menos surtido.
func (r *InventoryRepo) ListInStock(ctx context.Context, companyID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, company_id, product_name, sku, quantity_on_hand, unit_price, low_stock_threshold
		FROM inventory_items
		WHERE company_id = $1 AND quantity_on_hand > 0
		ORDER BY quantity_on_hand DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.CompanyID, &it.ProductName, &it.SKU,
			&it.QuantityOnHand, &it.UnitPrice, &it.LowStockThreshold,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetByProductName match exacto por nombre; (nil, nil) si no existe.
func (r *InventoryRepo) GetByProductName(ctx context.Context, companyID, productName string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, company_id, product_name, sku, quantity_on_hand, unit_price, low_stock_threshold
		FROM inventory_items
		WHERE company_id = $1 AND product_name = $2`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, companyID, productName).Scan(
		&it.ID, &it.CompanyID, &it.ProductName, &it.SKU,
		&it.QuantityOnHand, &it.UnitPrice, &it.LowStockThreshold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}
