package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/uhg-tech/aura-core/internal/domain/entity"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de documentos. Pasar pool o tx.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste los metadatos del documento subido.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.FinancialDocument) error {
	query := `
		INSERT INTO financial_documents (id, company_id, filename, file_path, file_type, upload_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompanyID, d.Filename, d.FilePath, d.FileType, d.UploadDate, d.Status,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado de procesamiento del documento.
func (r *DocumentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE financial_documents SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}

// GetByID obtiene un documento; (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.FinancialDocument, error) {
	query := `
		SELECT id, company_id, filename, file_path, file_type, upload_date, status
		FROM financial_documents WHERE id = $1`
	var d entity.FinancialDocument
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CompanyID, &d.Filename, &d.FilePath, &d.FileType, &d.UploadDate, &d.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}
