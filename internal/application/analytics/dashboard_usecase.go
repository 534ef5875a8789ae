// Package analytics contiene los casos de uso del dashboard y de los reportes de movimientos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

const (
	dashboardDays            = 7 // días del gráfico de entradas/salidas, hoy incluido
	dashboardRecentMovements = 5 // movimientos en el widget de recientes
)

// DashboardUseCase genera el resumen del inventario visible para el usuario.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, movRepo: movRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos lecturas en paralelo:
//  1. productos visibles → totales, stock bajo, stock por categoría
//  2. movimientos visibles → serie de los últimos 7 días y recientes
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	actor *entity.Credential,
	now time.Time,
) (*dto.DashboardSummaryDTO, error) {
	scope := access.ScopeFor(actor)

	// ── Goroutines para paralelizar las lecturas ─────────────────────────────
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type movementsResult struct {
		list []*entity.StockMovement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx, scope)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.movRepo.List(ctx, scope, stock.MovementFilter{})
		movementsCh <- movementsResult{list, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	// ── Agregados ────────────────────────────────────────────────────────────
	totalValue := decimal.Zero
	for _, p := range products.list {
		totalValue = totalValue.Add(p.StockValue())
	}
	low := stock.LowStock(products.list)
	recent := movements.list
	if len(recent) > dashboardRecentMovements {
		recent = recent[:dashboardRecentMovements]
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    len(products.list),
		TotalStock:       stock.TotalStock(products.list),
		TotalValue:       totalValue.Round(2),
		LowStockCount:    len(low),
		LowStockProducts: dto.ProductsFromEntities(low),
		Last7Days:        dto.DailyTotalsFromDomain(stock.DailySeries(movements.list, stock.LastDays(now, dashboardDays))),
		StockByCategory:  dto.CategoryTotalsFromDomain(stock.StockByCategory(products.list)),
		RecentMovements:  dto.MovementsFromEntities(recent),
		DateLabel:        monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Fevereiro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
