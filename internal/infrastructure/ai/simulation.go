package ai

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/application/ports"
)

// Verificar en tiempo de compilación que SimulationExtractor implementa el puerto.
var _ ports.DocumentExtractor = (*SimulationExtractor)(nil)

// SimulationExtractor produce un resultado sintético determinista con el mismo
// esquema que una extracción real. Solo el log WARN lo delata como sintético.
// Sirve de motor principal sin API key y de fallback del motor Gemini.
type SimulationExtractor struct{}

// NewSimulationExtractor construye el motor de simulación.
func NewSimulationExtractor() *SimulationExtractor {
	return &SimulationExtractor{}
}

// ExtractDocument devuelve la transacción de ejemplo fija (total 8400.00,
// IVA 400.00, dos líneas). La fecha es la del día para que el asiento
// resultante quede en el presente del tablero.
func (s *SimulationExtractor) ExtractDocument(ctx context.Context, filePath, mimeType string) (*dto.ExtractionResult, error) {
	log.Warn().
		Str("file", filePath).
		Str("mime", mimeType).
		Msg("motor de simulación activo: resultado sintético")

	return &dto.ExtractionResult{
		Merchant:       "Apple Store Dubai Mall (Sim)",
		Date:           time.Now().Format("2006-01-02"),
		Total:          8400.00,
		Tax:            400.00,
		Currency:       "AED",
		Category:       "Inventory",
		Description:    "Achat Stock iPhone 15 Pro Max (Backup)",
		IsDeductible:   true,
		TaxRuleApplied: "Standard 5% VAT",
		Justification:  "Achat de marchandises (Mode Secours).",
		LineItems: []dto.ExtractedLineItem{
			{Name: "iPhone 15 Pro Max 256GB", SKU: "IPH-15PM-256", Quantity: 2, UnitPrice: 4000.00},
			{Name: "AppleCare+ Protection Plan", SKU: "APL-CARE-15", Quantity: 2, UnitPrice: 200.00},
		},
	}, nil
}

// Engine identifica el motor.
func (s *SimulationExtractor) Engine() string { return "SIMULATION" }
