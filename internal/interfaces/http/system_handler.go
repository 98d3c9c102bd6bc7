package http

import "github.com/gofiber/fiber/v2"

// SystemInfo datos de la portada de la API.
type SystemInfo struct {
	System   string // nombre comercial del sistema
	AIEngine string // motor activo: GEMINI o SIMULATION
	Version  string
}

// SystemHandler sirve la raíz con el estado del sistema.
type SystemHandler struct {
	info SystemInfo
}

// NewSystemHandler construye el handler.
func NewSystemHandler(info SystemInfo) *SystemHandler {
	return &SystemHandler{info: info}
}

// Home godoc
// @Summary      Estado del sistema y motor de IA activo
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *SystemHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"system":    h.info.System,
		"status":    "Online",
		"ai_engine": h.info.AIEngine,
		"version":   h.info.Version,
	})
}
