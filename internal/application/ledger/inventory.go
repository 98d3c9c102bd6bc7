package ledger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

const generatedSKUPrefix = "GEN-"

// ApplyLineItems fusiona las líneas extraídas en el stock de la sociedad.
// Reglas:
//   - cantidad <= 0 o nombre vacío → la línea se omite en silencio
//   - artículo existente (match exacto por nombre) → suma cantidad y
//     sobrescribe unit_price con la última observación
//   - artículo nuevo sin SKU → se sintetiza GEN-XXXXXXXX
//
// El incremento es atómico en el repositorio (upsert), de modo que dos scans
// concurrentes del mismo producto no pierden actualizaciones.
func ApplyLineItems(ctx context.Context, inv repository.InventoryRepository, companyID string, items []dto.ExtractedLineItem) error {
	for _, item := range items {
		if item.Quantity <= 0 || item.Name == "" {
			continue
		}
		sku := item.SKU
		if sku == "" {
			sku = synthesizeSKU()
		}
		err := inv.AddStock(ctx, &entity.InventoryItem{
			ID:                uuid.New().String(),
			CompanyID:         companyID,
			ProductName:       item.Name,
			SKU:               sku,
			QuantityOnHand:    item.Quantity,
			UnitPrice:         decimal.NewFromFloat(item.UnitPrice),
			LowStockThreshold: entity.DefaultLowStockThreshold,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func synthesizeSKU() string {
	return generatedSKUPrefix + strings.ToUpper(uuid.New().String()[:8])
}
