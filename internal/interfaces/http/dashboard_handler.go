package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/application/usecase"
	"github.com/uhg-tech/aura-core/internal/domain"
)

// DashboardHandler sirve las vistas de lectura: tablero, inventario y activos.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler de lectura.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Tablero: últimas 20 transacciones (desc)
// @Tags         aura
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/aura/dashboard/{user_id} [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), c.Params("user_id"))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			// Contrato original: objeto {error} con status 200, no un 404.
			return c.JSON(fiber.Map{"error": "No company"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Inventario en stock (más surtido primero)
// @Tags         aura
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.InventoryItemDTO
// @Router       /api/aura/inventory/{user_id} [get]
func (h *DashboardHandler) Inventory(c *fiber.Ctx) error {
	items, err := h.uc.GetInventory(c.Context(), c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// FixedAssets godoc
// @Summary      Activos fijos de la sociedad
// @Tags         aura
// @Produce      json
// @Param        user_id  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.FixedAssetDTO
// @Router       /api/aura/assets/{user_id} [get]
func (h *DashboardHandler) FixedAssets(c *fiber.Ctx) error {
	assets, err := h.uc.GetFixedAssets(c.Context(), c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(assets)
}
