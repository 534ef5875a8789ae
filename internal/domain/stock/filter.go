package stock

import (
	"fmt"
	"time"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// FilterAll valor de filtro que desactiva el criterio (igual que vacío).
const FilterAll = "all"

// MovementFilter criterios del reporte de movimientos. Rango de fechas inclusivo en ambos extremos.
type MovementFilter struct {
	ProductID string
	Type      string
	StartDate string // YYYY-MM-DD, vacío = sin límite
	EndDate   string // YYYY-MM-DD, vacío = sin límite
}

// Validate verifica tipo y fechas.
func (f MovementFilter) Validate() error {
	if f.Type != "" && f.Type != FilterAll && !entity.IsValidMovementType(f.Type) {
		return fmt.Errorf("%w: tipo debe ser entry, exit o all", domain.ErrInvalidInput)
	}
	if f.StartDate != "" {
		if err := ValidateDate(f.StartDate); err != nil {
			return fmt.Errorf("%w: startDate inválido", domain.ErrInvalidInput)
		}
	}
	if f.EndDate != "" {
		if err := ValidateDate(f.EndDate); err != nil {
			return fmt.Errorf("%w: endDate inválido", domain.ErrInvalidInput)
		}
	}
	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return fmt.Errorf("%w: startDate no puede ser posterior a endDate", domain.ErrInvalidInput)
	}
	return nil
}

// Matches indica si el movimiento cumple todos los criterios.
func (f MovementFilter) Matches(m *entity.StockMovement) bool {
	if f.ProductID != "" && f.ProductID != FilterAll && m.ProductID != f.ProductID {
		return false
	}
	if f.Type != "" && f.Type != FilterAll && m.Type != f.Type {
		return false
	}
	// YYYY-MM-DD compara igual como texto que como fecha
	if f.StartDate != "" && m.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && m.Date > f.EndDate {
		return false
	}
	return true
}

// FilterMovements aplica el filtro preservando el orden.
func FilterMovements(movs []*entity.StockMovement, f MovementFilter) []*entity.StockMovement {
	out := make([]*entity.StockMovement, 0, len(movs))
	for _, m := range movs {
		if f.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// ValidateDate verifica el formato YYYY-MM-DD.
func ValidateDate(s string) error {
	_, err := time.Parse(entity.DateLayout, s)
	return err
}

// LastDays devuelve las n fechas que terminan en today (incluida), de la más antigua a la más reciente.
func LastDays(today time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, today.AddDate(0, 0, -i).Format(entity.DateLayout))
	}
	return out
}
