// Package csvexport serializa el reporte de movimientos como CSV.
package csvexport

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/ports"
	"github.com/jhoicas/stockpro/internal/infrastructure/reportfmt"
)

var _ ports.ReportExporter = (*Exporter)(nil)

// utf8BOM permite que planillas abran los acentos correctamente.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Exporter CSV separado por ';' (convención de planillas en pt-BR).
type Exporter struct {
	comma rune
}

// New construye el exportador.
func New() *Exporter { return &Exporter{comma: ';'} }

func (e *Exporter) Format() string      { return "csv" }
func (e *Exporter) ContentType() string { return "text/csv; charset=utf-8" }

// Export escribe encabezado y una fila por movimiento.
func (e *Exporter) Export(report *dto.MovementReportDTO) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = e.comma

	if err := w.Write(reportfmt.Columns); err != nil {
		return nil, fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, m := range report.Movements {
		if err := w.Write(reportfmt.Row(m)); err != nil {
			return nil, fmt.Errorf("csv: fila %s: %w", m.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
