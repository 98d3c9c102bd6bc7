package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// CompanyRepository puerto de persistencia de sociedades.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	// GetByOwner devuelve la primera sociedad del usuario o (nil, nil) si no tiene.
	GetByOwner(ctx context.Context, ownerID string) (*entity.Company, error)
}
