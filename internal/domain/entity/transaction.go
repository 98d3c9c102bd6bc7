package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction es un asiento del libro derivado de un documento analizado.
// Inmutable una vez creada: el repositorio no expone update ni delete.
// Los valores extraídos se persisten tal cual, sin validación numérica.
type Transaction struct {
	ID                     string
	CompanyID              string
	DocumentID             string // vacío si no proviene de un documento
	EntryNumber            string // referencia contable J-<año>-<ref documento>
	Date                   time.Time
	MerchantName           string
	Description            string
	AmountTotal            decimal.Decimal
	AmountTax              decimal.Decimal
	Currency               string
	Category               string
	IsTaxDeductible        bool
	DeductionJustification string
	IsTaxRefundable        bool
}
