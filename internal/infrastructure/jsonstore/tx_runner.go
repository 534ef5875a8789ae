package jsonstore

import (
	"context"

	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con lock exclusivo sobre el Store. Los repositorios que recibe fn
// trabajan sobre una copia del estado; si fn devuelve error la copia se descarta (rollback)
// y si termina bien se reescribe el archivo una sola vez (commit).
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner con el Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run inicia la transacción, ejecuta fn con repos atados a ella y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.store.write(ctx, func(st *state) error {
		tx := txState{st: st}
		return fn(&MovementRepository{db: tx}, &ProductRepository{db: tx})
	})
}
