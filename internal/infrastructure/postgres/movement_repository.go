package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// movement_date es DATE; se lee como texto AAAA-MM-DD para no depender del DateStyle.
const movementColumns = `id, product_id, product_name, type, quantity, reason,
	to_char(movement_date, 'YYYY-MM-DD'), observations, created_ms, user_id`

// MovementRepo ledger sobre la tabla movements (usable con pool o tx). Solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega el movimiento al ledger.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, product_name, type, quantity, reason,
			movement_date, observations, created_ms, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7::text::date, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.ProductName, movement.Type, movement.Quantity,
		movement.Reason, movement.Date, movement.Observations, movement.Timestamp, movement.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List filtra por scope y filter, del más reciente al más antiguo.
// seq desempata timestamps iguales: el último insertado va primero.
func (r *MovementRepo) List(ctx context.Context, scope access.Scope, filter stock.MovementFilter) ([]*entity.StockMovement, error) {
	query, args, ok := listMovementsQuery(scope, filter)
	if !ok {
		return []*entity.StockMovement{}, nil
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StockMovement, 0)
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity, &m.Reason,
			&m.Date, &m.Observations, &m.Timestamp, &m.UserID); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// listMovementsQuery arma el SELECT; ok=false cuando el alcance no ve ningún registro.
func listMovementsQuery(scope access.Scope, filter stock.MovementFilter) (string, []any, bool) {
	where, ok := scopeWhere(scope)
	if !ok {
		return "", nil, false
	}
	if filter.ProductID != "" && filter.ProductID != stock.FilterAll {
		where.add("product_id = $%d", filter.ProductID)
	}
	if filter.Type != "" && filter.Type != stock.FilterAll {
		where.add("type = $%d", filter.Type)
	}
	if filter.StartDate != "" {
		where.add("movement_date >= $%d::text::date", filter.StartDate)
	}
	if filter.EndDate != "" {
		where.add("movement_date <= $%d::text::date", filter.EndDate)
	}
	query := `SELECT ` + movementColumns + ` FROM movements` + where.String() +
		` ORDER BY created_ms DESC, seq DESC`
	return query, where.args, true
}
