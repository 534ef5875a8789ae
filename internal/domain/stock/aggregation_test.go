package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

func TestSumTotals(t *testing.T) {
	movs := []*entity.StockMovement{
		dated("1", "a", entity.MovementTypeEntry, "2025-01-01", 4),
		dated("2", "a", entity.MovementTypeExit, "2025-01-01", 1),
		dated("3", "b", entity.MovementTypeEntry, "2025-01-02", 6),
	}
	assert.Equal(t, stock.Totals{Entries: 10, Exits: 1, Count: 3}, stock.SumTotals(movs))
}

func TestDailyTotals_OrdenAscendente(t *testing.T) {
	movs := []*entity.StockMovement{
		dated("1", "a", entity.MovementTypeEntry, "2025-01-03", 2),
		dated("2", "a", entity.MovementTypeExit, "2025-01-01", 1),
		dated("3", "a", entity.MovementTypeEntry, "2025-01-03", 5),
	}
	assert.Equal(t, []stock.DailyTotal{
		{Date: "2025-01-01", Entries: 0, Exits: 1},
		{Date: "2025-01-03", Entries: 7, Exits: 0},
	}, stock.DailyTotals(movs))
}

func TestDailySeries_RellenaCeros(t *testing.T) {
	movs := []*entity.StockMovement{
		dated("1", "a", entity.MovementTypeEntry, "2025-01-02", 2),
		dated("2", "a", entity.MovementTypeEntry, "2024-12-01", 99),
	}
	got := stock.DailySeries(movs, []string{"2025-01-01", "2025-01-02", "2025-01-03"})
	assert.Equal(t, []stock.DailyTotal{
		{Date: "2025-01-01"},
		{Date: "2025-01-02", Entries: 2},
		{Date: "2025-01-03"},
	}, got)
}

func TestCategoryTotals(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Category: "Ferramentas"},
		{ID: "b", Category: "Elétrica"},
		{ID: "c", Category: "Ferramentas"},
		{ID: "d", Category: "Sem movimento"},
	}
	movs := []*entity.StockMovement{
		dated("1", "a", entity.MovementTypeEntry, "2025-01-01", 3),
		dated("2", "b", entity.MovementTypeExit, "2025-01-01", 2),
		dated("3", "c", entity.MovementTypeExit, "2025-01-01", 4),
		dated("4", "zz", entity.MovementTypeEntry, "2025-01-01", 40),
	}
	assert.Equal(t, []stock.CategoryTotal{
		{Category: "Ferramentas", Quantity: 7},
		{Category: "Elétrica", Quantity: 2},
	}, stock.CategoryTotals(products, movs))
}

func TestStockByCategoryYTotal(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Category: "X", CurrentStock: 3},
		{ID: "b", Category: "Y", CurrentStock: -1},
		{ID: "c", Category: "X", CurrentStock: 4},
	}
	assert.Equal(t, []stock.CategoryTotal{{Category: "X", Quantity: 7}, {Category: "Y", Quantity: -1}}, stock.StockByCategory(products))
	assert.Equal(t, 6, stock.TotalStock(products))
}
