package entity

import (
	"encoding/json"
	"time"
)

// AuraMemory registro append-only que empareja el contexto del prompt con la
// salida JSON del modelo ("black box"). Nunca se borra: alimenta el futuro
// reentrenamiento supervisado. HumanCorrectedJSON queda nil hasta que exista
// una corrección humana.
type AuraMemory struct {
	ID                 int64
	DocumentID         string
	RawTextInput       string
	AIJSONOutput       json.RawMessage
	HumanCorrectedJSON json.RawMessage // nil = sin corrección
	CreatedAt          time.Time
}
