package entity

import "time"

// Estados de procesamiento de un documento financiero.
// PENDING y ANALYZING son transitorios; COMPLETED y FAILED son finales.
const (
	DocumentStatusPending   = "PENDING"
	DocumentStatusAnalyzing = "ANALYZING"
	DocumentStatusCompleted = "COMPLETED"
	DocumentStatusFailed    = "FAILED"
)

// FinancialDocument metadatos de un archivo subido y su estado de análisis.
type FinancialDocument struct {
	ID         string
	CompanyID  string
	Filename   string // nombre original enviado por el cliente
	FilePath   string // ruta en disco local
	FileType   string // MIME type declarado en el upload
	UploadDate time.Time
	Status     string
}
