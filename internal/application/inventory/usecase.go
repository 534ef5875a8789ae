package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpro/internal/application/ports"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// RegisterMovementUseCase registra entradas y salidas de forma transaccional:
// el movimiento y el nuevo stock del producto se confirman juntos o no se confirma nada.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	metrics  ports.MetricsRecorder
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso. metrics puede ser nil.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	metrics ports.MetricsRecorder,
) *RegisterMovementUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
		metrics:  metrics,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj usado para la fecha por defecto y el timestamp.
func (uc *RegisterMovementUseCase) WithClock(now func() time.Time) *RegisterMovementUseCase {
	uc.now = now
	return uc
}

// MovementInputDTO entrada para registrar un movimiento.
// Scope decide si el actor puede mover el producto; UserID queda como dueño del movimiento.
type MovementInputDTO struct {
	Scope        access.Scope
	UserID       string
	ProductID    string
	Type         string
	Quantity     int
	Reason       string
	Date         string
	Observations string
}

func (in *MovementInputDTO) validate(now time.Time) error {
	in.ProductID = strings.TrimSpace(in.ProductID)
	if in.ProductID == "" {
		return fmt.Errorf("%w: productId es obligatorio", domain.ErrInvalidInput)
	}
	if !entity.IsValidMovementType(in.Type) {
		return fmt.Errorf("%w: type debe ser %q o %q", domain.ErrInvalidInput, entity.MovementTypeEntry, entity.MovementTypeExit)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	in.Date = strings.TrimSpace(in.Date)
	if in.Date == "" {
		in.Date = now.Format(entity.DateLayout)
	} else if err := stock.ValidateDate(in.Date); err != nil {
		return fmt.Errorf("%w: date debe tener formato AAAA-MM-DD", domain.ErrInvalidInput)
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		in.Reason = entity.DefaultReason
	}
	in.Observations = strings.TrimSpace(in.Observations)
	return nil
}

// RegisterMovement valida la entrada antes de escribir nada; luego, en una sola transacción,
// bloquea el producto, aplica la proyección, persiste el stock y agrega el movimiento al ledger.
// Devuelve el movimiento registrado y el producto con el stock resultante.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInputDTO) (*entity.StockMovement, *entity.Product, error) {
	now := uc.now()
	if err := in.validate(now); err != nil {
		return nil, nil, err
	}

	var (
		mov     *entity.StockMovement
		product *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		p, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if !in.Scope.Allows(p.UserID) {
			return domain.ErrForbidden
		}
		m := &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    p.ID,
			ProductName:  p.Name,
			Type:         in.Type,
			Quantity:     in.Quantity,
			Reason:       in.Reason,
			Date:         in.Date,
			Observations: in.Observations,
			Timestamp:    now.UnixMilli(),
			UserID:       in.UserID,
		}
		stock.ApplyToProduct(p, m)
		if err := productRepo.UpdateStock(ctx, p.ID, p.CurrentStock); err != nil {
			return err
		}
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}
		mov, product = m, p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	uc.metrics.MovementRecorded(mov.Type, mov.Quantity)
	return mov, product, nil
}

// RegisterEntry registra una entrada (suma al stock).
func (uc *RegisterMovementUseCase) RegisterEntry(ctx context.Context, in MovementInputDTO) (*entity.StockMovement, *entity.Product, error) {
	in.Type = entity.MovementTypeEntry
	return uc.RegisterMovement(ctx, in)
}

// RegisterExit registra una salida (resta del stock; el resultado puede quedar negativo).
func (uc *RegisterMovementUseCase) RegisterExit(ctx context.Context, in MovementInputDTO) (*entity.StockMovement, *entity.Product, error) {
	in.Type = entity.MovementTypeExit
	return uc.RegisterMovement(ctx, in)
}

// List devuelve los movimientos visibles para scope que cumplen filter, del más reciente al más antiguo.
func (uc *RegisterMovementUseCase) List(ctx context.Context, scope access.Scope, filter stock.MovementFilter) ([]*entity.StockMovement, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return uc.movRepo.List(ctx, scope, filter)
}
