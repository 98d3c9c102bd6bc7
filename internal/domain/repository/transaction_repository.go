package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// TransactionRepository puerto de persistencia de asientos contables.
// Solo alta y lectura: las transacciones son inmutables (append-only).
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	// ListRecentByCompany devuelve las últimas transacciones por fecha descendente.
	ListRecentByCompany(ctx context.Context, companyID string, limit int) ([]*entity.Transaction, error)
}
