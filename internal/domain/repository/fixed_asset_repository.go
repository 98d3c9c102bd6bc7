package repository

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
)

// FixedAssetRepository puerto de lectura de activos fijos.
type FixedAssetRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.FixedAsset, error)
}
