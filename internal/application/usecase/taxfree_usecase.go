package usecase

import (
	"fmt"
	"math"
	"net/url"

	"github.com/uhg-tech/aura-core/internal/application/dto"
)

// Reglas del esquema de reembolso turista (estilo Planet Tax Free UAE):
// 85% de la TVA incluida se devuelve, menos 4.80 AED de gastos por etiqueta;
// solo compras por encima de 250 AED son elegibles.
const (
	vatRate          = 0.05
	refundPercentage = 0.85
	adminFee         = 4.80
	eligibleMinimum  = 250.0

	qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
)

// TaxFreeUseCase calcula la estimación de reembolso de IVA.
// Aritmética en float64 a propósito: el resultado debe reproducir el cálculo
// original bit a bit (un tipo decimal alteraría el redondeo).
type TaxFreeUseCase struct{}

// NewTaxFreeUseCase construye el caso de uso.
func NewTaxFreeUseCase() *TaxFreeUseCase {
	return &TaxFreeUseCase{}
}

// Calculate estima el reembolso para un total con IVA incluido.
func (uc *TaxFreeUseCase) Calculate(in dto.TaxFreeRequest) *dto.TaxFreeResponse {
	vatAmount := in.AmountTotal * (vatRate / (1 + vatRate)) // IVA incluido en el total

	estimatedRefund := vatAmount*refundPercentage - adminFee
	if estimatedRefund < 0 {
		estimatedRefund = 0
	}

	status := "NOT_ELIGIBLE"
	if in.AmountTotal > eligibleMinimum {
		status = "ELIGIBLE"
	}

	return &dto.TaxFreeResponse{
		TotalPaid:       in.AmountTotal,
		VATPaid:         round2(vatAmount),
		EstimatedRefund: round2(estimatedRefund),
		AdminFees:       round2(vatAmount*(1-refundPercentage) + adminFee),
		QRCodeURL:       qrCodeURL(in.MerchantName, in.AmountTotal, round2(estimatedRefund)),
		Status:          status,
	}
}

// qrCodeURL arma la URL del servicio externo de QR con el payload
// TAXFREE|comercio|total|reembolso|AED como parámetro escapado.
func qrCodeURL(merchant string, total, refund float64) string {
	data := fmt.Sprintf("TAXFREE|%v|%v|%v|AED", merchant, total, refund)
	return fmt.Sprintf("%s?size=200x200&data=%s&color=10b981&bgcolor=020617", qrEndpoint, url.QueryEscape(data))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
