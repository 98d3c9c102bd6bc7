package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// DocumentRepository puerto de persistencia de documentos financieros.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.FinancialDocument) error
	UpdateStatus(ctx context.Context, id, status string) error
	GetByID(ctx context.Context, id string) (*entity.FinancialDocument, error)
}
