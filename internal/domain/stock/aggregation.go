package stock

import (
	"sort"

	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// Totals suma de cantidades por tipo.
type Totals struct {
	Entries int
	Exits   int
	Count   int
}

// DailyTotal entradas y salidas de una fecha.
type DailyTotal struct {
	Date    string
	Entries int
	Exits   int
}

// CategoryTotal cantidad acumulada de una categoría.
type CategoryTotal struct {
	Category string
	Quantity int
}

// SumTotals agrega las cantidades por tipo.
func SumTotals(movs []*entity.StockMovement) Totals {
	var t Totals
	for _, m := range movs {
		switch m.Type {
		case entity.MovementTypeEntry:
			t.Entries += m.Quantity
		case entity.MovementTypeExit:
			t.Exits += m.Quantity
		}
	}
	t.Count = len(movs)
	return t
}

// DailyTotals agrupa por fecha, en orden ascendente de fecha.
func DailyTotals(movs []*entity.StockMovement) []DailyTotal {
	idx := make(map[string]int)
	out := make([]DailyTotal, 0)
	for _, m := range movs {
		i, ok := idx[m.Date]
		if !ok {
			i = len(out)
			idx[m.Date] = i
			out = append(out, DailyTotal{Date: m.Date})
		}
		addToDay(&out[i], m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DailySeries devuelve una entrada por cada fecha pedida, con ceros en los días sin movimientos.
func DailySeries(movs []*entity.StockMovement, dates []string) []DailyTotal {
	idx := make(map[string]int, len(dates))
	out := make([]DailyTotal, len(dates))
	for i, d := range dates {
		idx[d] = i
		out[i] = DailyTotal{Date: d}
	}
	for _, m := range movs {
		if i, ok := idx[m.Date]; ok {
			addToDay(&out[i], m)
		}
	}
	return out
}

func addToDay(d *DailyTotal, m *entity.StockMovement) {
	switch m.Type {
	case entity.MovementTypeEntry:
		d.Entries += m.Quantity
	case entity.MovementTypeExit:
		d.Exits += m.Quantity
	}
}

// CategoryTotals suma las cantidades de los movimientos por categoría del producto.
// Solo incluye categorías con total > 0, en el orden en que aparecen los productos.
// Los movimientos huérfanos (producto eliminado) no tienen categoría y se ignoran.
func CategoryTotals(products []*entity.Product, movs []*entity.StockMovement) []CategoryTotal {
	byProduct := make(map[string]int)
	for _, m := range movs {
		byProduct[m.ProductID] += m.Quantity
	}
	idx := make(map[string]int)
	out := make([]CategoryTotal, 0)
	for _, p := range products {
		qty := byProduct[p.ID]
		if qty <= 0 {
			continue
		}
		if i, ok := idx[p.Category]; ok {
			out[i].Quantity += qty
			continue
		}
		idx[p.Category] = len(out)
		out = append(out, CategoryTotal{Category: p.Category, Quantity: qty})
	}
	return out
}

// StockByCategory suma CurrentStock por categoría (distribución del dashboard).
func StockByCategory(products []*entity.Product) []CategoryTotal {
	idx := make(map[string]int)
	out := make([]CategoryTotal, 0)
	for _, p := range products {
		if i, ok := idx[p.Category]; ok {
			out[i].Quantity += p.CurrentStock
			continue
		}
		idx[p.Category] = len(out)
		out = append(out, CategoryTotal{Category: p.Category, Quantity: p.CurrentStock})
	}
	return out
}

// TotalStock suma CurrentStock de todos los productos.
func TotalStock(products []*entity.Product) int {
	total := 0
	for _, p := range products {
		total += p.CurrentStock
	}
	return total
}
