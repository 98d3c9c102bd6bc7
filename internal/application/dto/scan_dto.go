package dto

// ScanInput describe el archivo ya persistido en disco listo para analizar.
type ScanInput struct {
	OriginalFilename string // nombre enviado por el cliente
	StoredFilename   string // nombre final en disco (user_ts_nombre)
	FilePath         string // ruta completa en disco
	MimeType         string
}

// ScanResponse salida del pipeline documento → libro contable.
type ScanResponse struct {
	Success bool              `json:"success"`
	Data    *ExtractionResult `json:"data"`
}
