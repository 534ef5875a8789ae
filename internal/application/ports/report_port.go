package ports

import "github.com/jhoicas/stockpro/internal/application/dto"

// ReportExporter genera el archivo de un reporte de movimientos.
// Cada adaptador (PDF, CSV) declara su formato, extensión y content type.
type ReportExporter interface {
	Format() string
	ContentType() string
	Export(report *dto.MovementReportDTO) ([]byte, error)
}
