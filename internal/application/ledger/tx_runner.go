package ledger

import (
	"context"

	"github.com/uhg-tech/aura-core/internal/domain/repository"
)

// TxRunner ejecuta el cierre del pipeline documento → libro contable dentro
// de una única transacción: alta del asiento, upsert de inventario, registro
// de memoria y estado final del documento se confirman todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docs repository.DocumentRepository,
		txs repository.TransactionRepository,
		inv repository.InventoryRepository,
		mem repository.MemoryRepository,
	) error) error
}
