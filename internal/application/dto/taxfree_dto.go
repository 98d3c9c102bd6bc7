package dto

// TaxFreeRequest entrada del cálculo de reembolso de IVA turista.
type TaxFreeRequest struct {
	AmountTotal  float64 `json:"amount_total"`
	MerchantName string  `json:"merchant_name"`
}

// TaxFreeResponse estimación de reembolso estilo Planet Tax Free UAE.
type TaxFreeResponse struct {
	TotalPaid       float64 `json:"total_paid"`
	VATPaid         float64 `json:"vat_paid"`
	EstimatedRefund float64 `json:"estimated_refund"`
	AdminFees       float64 `json:"admin_fees"`
	QRCodeURL       string  `json:"qr_code_url"`
	Status          string  `json:"status"` // ELIGIBLE | NOT_ELIGIBLE
}
