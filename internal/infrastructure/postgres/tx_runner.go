package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uhg-tech/aura-core/internal/application/auth"
	"github.com/uhg-tech/aura-core/internal/application/ledger"
	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and auth.RegistrationTxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ auth.RegistrationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del cierre del pipeline de scan
// (documento, asiento, inventario, memoria) y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	docs repository.DocumentRepository,
	txs repository.TransactionRepository,
	inv repository.InventoryRepository,
	mem repository.MemoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	docs := NewDocumentRepository(tx)
	txs := NewTransactionRepository(tx)
	inv := NewInventoryRepository(tx)
	mem := NewMemoryRepository(tx)

	if err := fn(docs, txs, inv, mem); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration inicia una transacción con los repos del alta de cuenta
// (usuario + perfil + sociedad).
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	companies repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	profiles := NewProfileRepository(tx)
	companies := NewCompanyRepository(tx)

	if err := fn(users, profiles, companies); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
