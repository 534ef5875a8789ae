// Package stock contiene la proyección de stock (servicio de dominio): cómo el ledger de
// movimientos determina CurrentStock, el indicador de stock bajo y las agregaciones de reportes.
package stock

import "github.com/jhoicas/stockpro/internal/domain/entity"

// Delta devuelve el efecto con signo de un movimiento: +q para entry, −q para exit.
// Un tipo desconocido no tiene efecto.
func Delta(mov *entity.StockMovement) int {
	switch mov.Type {
	case entity.MovementTypeEntry:
		return mov.Quantity
	case entity.MovementTypeExit:
		return -mov.Quantity
	}
	return 0
}

// Apply calcula el nuevo stock tras un movimiento. No hay piso en cero:
// una salida puede dejar el stock negativo.
func Apply(current int, mov *entity.StockMovement) int {
	return current + Delta(mov)
}

// ApplyToProduct aplica el movimiento sobre la caché CurrentStock del producto.
func ApplyToProduct(p *entity.Product, mov *entity.StockMovement) {
	p.CurrentStock = Apply(p.CurrentStock, mov)
}

// Project reproduce el ledger en orden sobre una línea base.
func Project(initial int, movs []*entity.StockMovement) int {
	current := initial
	for _, m := range movs {
		current = Apply(current, m)
	}
	return current
}

// LedgerSum suma el efecto de todos los movimientos de un producto.
func LedgerSum(productID string, movs []*entity.StockMovement) int {
	sum := 0
	for _, m := range movs {
		if m.ProductID == productID {
			sum += Delta(m)
		}
	}
	return sum
}

// IsLowStock: current <= minStock. La igualdad cuenta como stock bajo.
func IsLowStock(current, minStock int) bool {
	return current <= minStock
}

// IsProductLowStock aplica IsLowStock sobre un producto.
func IsProductLowStock(p *entity.Product) bool {
	return IsLowStock(p.CurrentStock, p.MinStock)
}

// LowStock devuelve los productos con stock bajo, en el orden recibido.
func LowStock(products []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if IsProductLowStock(p) {
			out = append(out, p)
		}
	}
	return out
}

// Drift diferencia entre la caché CurrentStock y lo que dice el ledger.
type Drift struct {
	ProductID   string
	ProductName string
	Cached      int
	Expected    int
	Delta       int // Cached − Expected
}

// Reconcile recalcula cada producto desde InitialStock + ledger y devuelve solo los que difieren.
func Reconcile(products []*entity.Product, movs []*entity.StockMovement) []Drift {
	byProduct := make(map[string]int, len(products))
	for _, m := range movs {
		byProduct[m.ProductID] += Delta(m)
	}
	out := make([]Drift, 0)
	for _, p := range products {
		expected := p.InitialStock + byProduct[p.ID]
		if expected != p.CurrentStock {
			out = append(out, Drift{
				ProductID:   p.ID,
				ProductName: p.Name,
				Cached:      p.CurrentStock,
				Expected:    expected,
				Delta:       p.CurrentStock - expected,
			})
		}
	}
	return out
}
