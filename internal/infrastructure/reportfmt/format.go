// Package reportfmt formatea valores de los reportes exportados en pt-BR.
package reportfmt

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// Title título de los reportes de movimientos.
const Title = "Relatório de Movimentações"

// Columns encabezados de la tabla de movimientos.
var Columns = []string{"Data", "Produto", "Tipo", "Quantidade", "Motivo", "Observações"}

// Date convierte AAAA-MM-DD a dd/mm/aaaa; si no se puede interpretar se devuelve tal cual.
func Date(s string) string {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// Int formatea con separador de miles pt-BR (1.234).
func Int(n int) string {
	return message.NewPrinter(language.BrazilianPortuguese).Sprintf("%d", n)
}

// TypeLabel etiqueta del tipo de movimiento.
func TypeLabel(t string) string {
	switch t {
	case entity.MovementTypeEntry:
		return "Entrada"
	case entity.MovementTypeExit:
		return "Saída"
	default:
		return t
	}
}

// Period describe el rango del filtro.
func Period(f dto.MovementFilterRequest) string {
	switch {
	case f.StartDate != "" && f.EndDate != "":
		return Date(f.StartDate) + " a " + Date(f.EndDate)
	case f.StartDate != "":
		return "a partir de " + Date(f.StartDate)
	case f.EndDate != "":
		return "até " + Date(f.EndDate)
	default:
		return "todo o período"
	}
}

// Row fila de la tabla de movimientos en el orden de Columns.
func Row(m dto.MovementResponse) []string {
	return []string{
		Date(m.Date),
		m.ProductName,
		TypeLabel(m.Type),
		Int(m.Quantity),
		m.Reason,
		m.Observations,
	}
}
