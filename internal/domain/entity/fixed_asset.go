package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FixedAsset activo fijo de una sociedad (solo lectura en esta versión).
type FixedAsset struct {
	ID            string
	CompanyID     string
	AssetName     string
	PurchaseDate  time.Time
	PurchasePrice decimal.Decimal
	LifespanYears int
	CurrentValue  decimal.Decimal
}
