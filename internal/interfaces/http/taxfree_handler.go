package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/application/usecase"
)

// TaxFreeHandler maneja el cálculo de reembolso de IVA turista.
type TaxFreeHandler struct {
	uc *usecase.TaxFreeUseCase
}

// NewTaxFreeHandler construye el handler.
func NewTaxFreeHandler(uc *usecase.TaxFreeUseCase) *TaxFreeHandler {
	return &TaxFreeHandler{uc: uc}
}

// Calculate godoc
// @Summary      Estimar reembolso Tax Free (IVA incluido, umbral 250 AED)
// @Tags         aura
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaxFreeRequest  true  "amount_total, merchant_name"
// @Success      200   {object}  dto.TaxFreeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aura/tax-free [post]
func (h *TaxFreeHandler) Calculate(c *fiber.Ctx) error {
	var in dto.TaxFreeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Calculate(in))
}
