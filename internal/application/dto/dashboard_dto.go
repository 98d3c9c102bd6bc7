package dto

// TransactionDTO asiento contable serializado para el dashboard.
// Los importes salen como número JSON (no como string decimal).
type TransactionDTO struct {
	ID                     string  `json:"id"`
	DocumentID             string  `json:"document_id,omitempty"`
	EntryNumber            string  `json:"entry_number"`
	Date                   string  `json:"date"` // YYYY-MM-DD
	MerchantName           string  `json:"merchant_name"`
	Description            string  `json:"description"`
	AmountTotal            float64 `json:"amount_total"`
	AmountTax              float64 `json:"amount_tax"`
	Currency               string  `json:"currency"`
	Category               string  `json:"category"`
	IsTaxDeductible        bool    `json:"is_tax_deductible"`
	DeductionJustification string  `json:"deduction_justification,omitempty"`
}

// DashboardResponse nombre de la sociedad + últimas transacciones (desc).
type DashboardResponse struct {
	Company      string           `json:"company"`
	Transactions []TransactionDTO `json:"transactions"`
}

// InventoryItemDTO artículo de stock serializado.
type InventoryItemDTO struct {
	ID                string  `json:"id"`
	ProductName       string  `json:"product_name"`
	SKU               string  `json:"sku"`
	QuantityOnHand    int     `json:"quantity_on_hand"`
	UnitPrice         float64 `json:"unit_price"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

// FixedAssetDTO activo fijo serializado.
type FixedAssetDTO struct {
	ID            string  `json:"id"`
	AssetName     string  `json:"asset_name"`
	PurchaseDate  string  `json:"purchase_date"`
	PurchasePrice float64 `json:"purchase_price"`
	LifespanYears int     `json:"lifespan_years"`
	CurrentValue  float64 `json:"current_value"`
}
