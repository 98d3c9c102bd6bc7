package postgres

import (
	"context"
	"fmt"

	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
// Sin update ni delete: los asientos son inmutables.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de asientos. Pasar pool o tx.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un asiento. document_id vacío se guarda como NULL.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, company_id, document_id, entry_number, date, merchant_name, description,
			amount_total, amount_tax, currency, category,
			is_tax_deductible, deduction_justification, is_tax_refundable
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.CompanyID, t.DocumentID, t.EntryNumber, t.Date, t.MerchantName, t.Description,
		t.AmountTotal, t.AmountTax, t.Currency, t.Category,
		t.IsTaxDeductible, t.DeductionJustification, t.IsTaxRefundable,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListRecentByCompany devuelve los últimos asientos por fecha descendente.
func (r *TransactionRepo) ListRecentByCompany(ctx context.Context, companyID string, limit int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, company_id, COALESCE(document_id, ''), entry_number, date, merchant_name, description,
		       amount_total, amount_tax, currency, category,
		       is_tax_deductible, COALESCE(deduction_justification, ''), is_tax_refundable
		FROM transactions
		WHERE company_id = $1
		ORDER BY date DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.DocumentID, &t.EntryNumber, &t.Date, &t.MerchantName, &t.Description,
			&t.AmountTotal, &t.AmountTax, &t.Currency, &t.Category,
			&t.IsTaxDeductible, &t.DeductionJustification, &t.IsTaxRefundable,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
