package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de sociedades. Pasar pool o tx.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva sociedad.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (id, owner_id, name, license_number, tax_id, is_free_zone, base_currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.OwnerID, c.Name, c.LicenseNumber, c.TaxID, c.IsFreeZone, c.BaseCurrency,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByOwner devuelve la primera sociedad del usuario; (nil, nil) si no tiene.
func (r *CompanyRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Company, error) {
	query := `
		SELECT id, owner_id, name, license_number, tax_id, is_free_zone, base_currency
		FROM companies WHERE owner_id = $1 LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.LicenseNumber, &c.TaxID, &c.IsFreeZone, &c.BaseCurrency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by owner: %w", err)
	}
	return &c, nil
}
