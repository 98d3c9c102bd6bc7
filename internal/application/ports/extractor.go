package ports

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/application/dto"
)

// DocumentExtractor define el puerto de salida hacia el servicio de
// comprensión de documentos. Cualquier adaptador (Gemini, simulación, mock)
// debe implementar esta interfaz; la selección se hace una sola vez en el
// arranque, nunca mediante un flag global mutable.
type DocumentExtractor interface {
	// ExtractDocument analiza el archivo en disco y devuelve el resultado
	// estructurado. Un solo intento contra el servicio remoto, sin retry;
	// ante cualquier fallo el adaptador remoto devuelve el resultado
	// sintético con error nil (el fallo queda solo en los logs).
	// El contexto debe llevar timeout: acota la espera de red.
	ExtractDocument(ctx context.Context, filePath, mimeType string) (*dto.ExtractionResult, error)
	// Engine identifica el motor activo ("GEMINI" o "SIMULATION").
	Engine() string
}
