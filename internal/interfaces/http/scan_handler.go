package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uhg-tech/aura-core/internal/application/dto"
	"github.com/uhg-tech/aura-core/internal/application/ledger"
	"github.com/uhg-tech/aura-core/internal/domain"
	"github.com/uhg-tech/aura-core/internal/infrastructure/storage"
)

// ScanHandler maneja el upload y análisis de documentos financieros.
type ScanHandler struct {
	uc    *ledger.ScanUseCase
	store *storage.Store
}

// NewScanHandler construye el handler del scanner.
func NewScanHandler(uc *ledger.ScanUseCase, store *storage.Store) *ScanHandler {
	return &ScanHandler{uc: uc, store: store}
}

// Scan godoc
// @Summary      Subir y analizar un documento financiero
// @Description  Guarda el archivo, lo envía al motor de extracción y registra
//               asiento, inventario y memoria de entrenamiento en una transacción.
// @Tags         aura
// @Accept       multipart/form-data
// @Produce      json
// @Param        user_id  path      string  true  "ID del usuario propietario"
// @Param        file     formData  file    true  "documento (imagen o PDF)"
// @Success      200      {object}  dto.ScanResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/aura/scan/{user_id} [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}

	path, storedName := h.store.BuildPath(userID, fileHeader.Filename)
	if err := c.SaveFile(fileHeader, path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo guardar el archivo"})
	}

	out, err := h.uc.Scan(c.Context(), userID, dto.ScanInput{
		OriginalFilename: fileHeader.Filename,
		StoredFilename:   storedName,
		FilePath:         path,
		MimeType:         fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "sociedad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PIPELINE_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
