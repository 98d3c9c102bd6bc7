package dto

// ExtractionResult es el JSON estructurado que produce el motor de IA (o la
// simulación) al analizar un documento financiero. El esquema es idéntico en
// ambos casos: un resultado sintético solo se distingue en los logs.
type ExtractionResult struct {
	Merchant       string              `json:"merchant"`
	Date           string              `json:"date"` // YYYY-MM-DD
	Total          float64             `json:"total"`
	Tax            float64             `json:"tax"`
	Currency       string              `json:"currency"`
	Category       string              `json:"category"`
	Description    string              `json:"description"`
	IsDeductible   bool                `json:"is_deductible"`
	TaxRuleApplied string              `json:"tax_rule_applied"`
	Justification  string              `json:"justification"`
	LineItems      []ExtractedLineItem `json:"line_items"`
}

// ExtractedLineItem línea de detalle extraída del documento.
type ExtractedLineItem struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
