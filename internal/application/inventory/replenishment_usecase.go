package inventory

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// idealStockFactor el stock ideal tras reponer es 1.5 × stock mínimo.
const idealStockFactor = 1.5

// replenishmentWindowDays ventana de consumo usada para priorizar.
const replenishmentWindowDays = 30

// ReplenishmentUseCase genera la lista de reposición de los productos con stock bajo.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// GenerateReplenishmentList devuelve los productos visibles con stock bajo, la cantidad
// sugerida para llegar al stock ideal y una prioridad basada en las salidas de los últimos 30 días.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(
	ctx context.Context,
	scope access.Scope,
	today time.Time,
) ([]dto.ReplenishmentSuggestionDTO, error) {

	// 1. Productos en o bajo el mínimo
	products, err := uc.productRepo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	low := stock.LowStock(products)
	if len(low) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	// 2. Salidas de la ventana por producto
	window := stock.MovementFilter{
		Type:      entity.MovementTypeExit,
		StartDate: today.AddDate(0, 0, -(replenishmentWindowDays - 1)).Format(entity.DateLayout),
		EndDate:   today.Format(entity.DateLayout),
	}
	exits, err := uc.movRepo.List(ctx, scope, window)
	if err != nil {
		return nil, err
	}
	exitsByID := make(map[string]int, len(low))
	for _, m := range exits {
		exitsByID[m.ProductID] += m.Quantity
	}

	// 3. Sugerencias
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	for _, p := range low {
		ideal := int(math.Ceil(float64(p.MinStock) * idealStockFactor))
		qty := ideal - p.CurrentStock
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Category:           p.Category,
			Unit:               p.Unit,
			CurrentStock:       p.CurrentStock,
			MinStock:           p.MinStock,
			IdealStock:         ideal,
			SuggestedQuantity:  qty,
			CostPrice:          p.CostPrice,
			EstimatedOrderCost: p.CostPrice.Mul(decimal.NewFromInt(int64(qty))),
			ExitsLast30Days:    exitsByID[p.ID],
		})
	}

	// 4. Ordenar: primero mayor consumo reciente, luego mayor déficit bajo el mínimo.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.ExitsLast30Days != b.ExitsLast30Days {
			return a.ExitsLast30Days > b.ExitsLast30Days
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})

	// 5. Asignar prioridad (1 = más urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
