package postgres

import (
	"context"
	"fmt"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.FixedAssetRepository = (*FixedAssetRepo)(nil)

// FixedAssetRepo implementación de lectura de activos fijos sobre PostgreSQL.
type FixedAssetRepo struct {
	q Querier
}

// NewFixedAssetRepository construye el adaptador de activos fijos. Pasar pool o tx.
func NewFixedAssetRepository(q Querier) *FixedAssetRepo {
	return &FixedAssetRepo{q: q}
}

// ListByCompany devuelve los activos fijos de la sociedad, del más reciente al más antiguo.
func (r *FixedAssetRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.FixedAsset, error) {
	query := `
		SELECT id, company_id, asset_name, purchase_date, purchase_price, lifespan_years, current_value
		FROM fixed_assets
		WHERE company_id = $1
		ORDER BY purchase_date DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list fixed assets: %w", err)
	}
	defer rows.Close()

	var list []*entity.FixedAsset
	for rows.Next() {
		var a entity.FixedAsset
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.AssetName, &a.PurchaseDate,
			&a.PurchasePrice, &a.LifespanYears, &a.CurrentValue,
		); err != nil {
			return nil, fmt.Errorf("scan fixed asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
