package entity

import "github.com/shopspring/decimal"

// DefaultLowStockThreshold umbral de alerta de stock para artículos nuevos.
const DefaultLowStockThreshold = 5

// InventoryItem stock por sociedad, identificado por nombre de producto
// (match exacto, sensible a mayúsculas). La cantidad solo crece por esta vía;
// no existe operación de venta/decremento en este núcleo.
type InventoryItem struct {
	ID                string
	CompanyID         string
	ProductName       string
	SKU               string
	QuantityOnHand    int
	UnitPrice         decimal.Decimal // sobrescrito con la última observación
	LowStockThreshold int
}
