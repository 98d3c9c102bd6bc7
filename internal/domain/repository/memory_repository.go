package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// MemoryRepository puerto de persistencia de la memoria de entrenamiento.
// Append-only: no hay update ni delete.
type MemoryRepository interface {
	Create(ctx context.Context, mem *entity.AuraMemory) error
}
