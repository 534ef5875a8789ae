package inventory

import (
	"context"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// ReconcileUseCase recalcula el stock de cada producto desde el ledger y reporta las diferencias
// con el valor cacheado. Siempre lee todo el almacén: un movimiento de otro usuario también
// afecta la proyección del producto.
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// Reconcile lista el drift dentro de una transacción (lectura consistente).
// Con fix=true además reescribe el stock cacheado con el valor proyectado.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, fix bool) (*dto.ReconcileResponse, error) {
	out := &dto.ReconcileResponse{Drift: []dto.StockDriftDTO{}}
	all := access.Scope{Admin: true}
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		products, err := productRepo.List(ctx, all)
		if err != nil {
			return err
		}
		movs, err := movRepo.List(ctx, all, stock.MovementFilter{})
		if err != nil {
			return err
		}
		out.Checked = len(products)
		for _, d := range stock.Reconcile(products, movs) {
			out.Drift = append(out.Drift, dto.StockDriftDTO{
				ProductID:   d.ProductID,
				ProductName: d.ProductName,
				Cached:      d.Cached,
				Expected:    d.Expected,
				Delta:       d.Delta,
			})
			if fix {
				if err := productRepo.UpdateStock(ctx, d.ProductID, d.Expected); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
