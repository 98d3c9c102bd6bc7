package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// InventoryRepository puerto de persistencia del stock por sociedad.
type InventoryRepository interface {
	// AddStock suma quantity_on_hand y sobrescribe unit_price de forma atómica
	// (upsert por company_id + product_name). Si el artículo no existe lo crea
	// con el SKU recibido; si existe, conserva su SKU original.
	AddStock(ctx context.Context, item *entity.InventoryItem) error
	// ListInStock devuelve artículos con stock > 0, ordenados por cantidad descendente.
	ListInStock(ctx context.Context, companyID string) ([]*entity.InventoryItem, error)
	// GetByProductName match exacto (sensible a mayúsculas); (nil, nil) si no existe.
	GetByProductName(ctx context.Context, companyID, productName string) (*entity.InventoryItem, error)
}
