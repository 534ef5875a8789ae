package repository

import (
	"context"

	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// MovementRepository puerto del ledger de movimientos. Solo append: no hay Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List devuelve los movimientos visibles para scope que cumplen filter, del más reciente al más antiguo.
	List(ctx context.Context, scope access.Scope, filter stock.MovementFilter) ([]*entity.StockMovement, error)
}
