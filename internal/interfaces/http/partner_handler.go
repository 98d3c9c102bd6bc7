package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/uhg-tech/aura-core/internal/application/usecase"
)

// PartnerHandler sirve el panel B2B de comisiones (demo comercial).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Stats godoc
// @Summary      Métricas de comisión para una agencia partner
// @Tags         partner
// @Produce      json
// @Param        partner_id  path  string  true  "ID del partner"
// @Success      200  {object}  dto.PartnerStats
// @Router       /api/aura/partner/stats/{partner_id} [get]
func (h *PartnerHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetStats(c.Params("partner_id")))
}
