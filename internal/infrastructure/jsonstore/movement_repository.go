package jsonstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

var _ repository.MovementRepository = (*MovementRepository)(nil)

// MovementRepository ledger sobre la colección movements. Solo append.
type MovementRepository struct {
	db accessor
}

// NewMovementRepository construye el repositorio sobre el Store.
func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{db: store}
}

// Create agrega el movimiento al final del ledger.
func (r *MovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	return r.db.write(ctx, func(st *state) error {
		for _, m := range st.movements {
			if m.ID == movement.ID {
				return domain.ErrDuplicate
			}
		}
		st.movements = append(st.movements, cloneMovement(movement))
		return nil
	})
}

// List filtra por scope y filter y ordena del más reciente al más antiguo.
// Con timestamps iguales el último registrado va primero.
func (r *MovementRepository) List(_ context.Context, scope access.Scope, filter stock.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.db.read(func(st *state) error {
		matched := stock.FilterMovements(access.Filter(st.movements, scope), filter)
		out = make([]*entity.StockMovement, 0, len(matched))
		for i := len(matched) - 1; i >= 0; i-- {
			out = append(out, cloneMovement(matched[i]))
		}
		return nil
	})
	slices.SortStableFunc(out, func(a, b *entity.StockMovement) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})
	return out, err
}
