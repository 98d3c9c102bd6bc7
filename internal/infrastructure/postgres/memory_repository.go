package postgres

import (
	"context"
	"fmt"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.MemoryRepository = (*MemoryRepo)(nil)

// MemoryRepo implementación del puerto MemoryRepository sobre PostgreSQL.
// Solo inserta: la memoria de entrenamiento nunca se modifica ni se borra.
type MemoryRepo struct {
	q Querier
}

// NewMemoryRepository construye el adaptador de la memoria black box. Pasar pool o tx.
func NewMemoryRepository(q Querier) *MemoryRepo {
	return &MemoryRepo{q: q}
}

// Create archiva el par contexto/salida del modelo. El ID lo asigna la DB (bigserial).
func (r *MemoryRepo) Create(ctx context.Context, m *entity.AuraMemory) error {
	query := `
		INSERT INTO aura_memory (document_id, raw_text_input, ai_json_output, human_corrected_json, created_at)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.DocumentID, m.RawTextInput, m.AIJSONOutput, m.HumanCorrectedJSON, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert aura memory: %w", err)
	}
	return nil
}
