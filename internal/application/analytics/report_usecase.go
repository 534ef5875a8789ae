package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/ports"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// DefaultReportDays ventana del reporte cuando no se informa ninguna fecha (hoy incluido).
const DefaultReportDays = 30

// ExportFilePrefix prefijo del nombre del archivo exportado.
const ExportFilePrefix = "relatorio-movimentacoes"

// ExportedFile archivo generado por una exportación.
type ExportedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReportUseCase reporte de movimientos filtrado y sus exportaciones.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	exporters   map[string]ports.ReportExporter
	metrics     ports.MetricsRecorder
}

// NewReportUseCase construye el caso de uso con los exportadores disponibles (pdf, csv, ...).
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	metrics ports.MetricsRecorder,
	exporters ...ports.ReportExporter,
) *ReportUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	byFormat := make(map[string]ports.ReportExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ReportUseCase{productRepo: productRepo, movRepo: movRepo, exporters: byFormat, metrics: metrics}
}

// Build aplica el filtro (sin fechas = últimos 30 días) y calcula totales, serie diaria y serie por categoría.
func (uc *ReportUseCase) Build(
	ctx context.Context,
	actor *entity.Credential,
	in dto.MovementFilterRequest,
	today time.Time,
) (*dto.MovementReportDTO, error) {
	if in.StartDate == "" && in.EndDate == "" {
		in.StartDate = today.AddDate(0, 0, -(DefaultReportDays - 1)).Format(entity.DateLayout)
		in.EndDate = today.Format(entity.DateLayout)
	}
	filter := dto.FilterFromRequest(in)
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	scope := access.ScopeFor(actor)

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
		list, err := uc.movRepo.List(ctx, scope, filter)
		movementsCh <- movementsResult{list, err}
	}()
	products := <-productsCh
	movements := <-movementsCh
	if products.err != nil {
		return nil, fmt.Errorf("reporte: productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("reporte: movimientos: %w", movements.err)
	}

	totals := stock.SumTotals(movements.list)
	return &dto.MovementReportDTO{
		Filter:      in,
		Movements:   dto.MovementsFromEntities(movements.list),
		Totals:      dto.MovementTotalsDTO{Entries: totals.Entries, Exits: totals.Exits, Count: totals.Count},
		Daily:       dto.DailyTotalsFromDomain(stock.DailyTotals(movements.list)),
		ByCategory:  dto.CategoryTotalsFromDomain(stock.CategoryTotals(products.list, movements.list)),
		GeneratedAt: today.Format(entity.DateLayout),
	}, nil
}

// Formats formatos de exportación registrados.
func (uc *ReportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		out = append(out, f)
	}
	return out
}

// Export genera el reporte y lo serializa con el exportador de format.
// Nombre: relatorio-movimentacoes-AAAA-MM-DD.<ext>.
func (uc *ReportUseCase) Export(
	ctx context.Context,
	actor *entity.Credential,
	format string,
	in dto.MovementFilterRequest,
	today time.Time,
) (*ExportedFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación no soportado %q", domain.ErrInvalidInput, format)
	}
	report, err := uc.Build(ctx, actor, in, today)
	if err != nil {
		return nil, err
	}
	data, err := exporter.Export(report)
	if err != nil {
		return nil, fmt.Errorf("reporte: exportar %s: %w", format, err)
	}
	uc.metrics.ReportExported(format)
	return &ExportedFile{
		Name:        ExportFileName(today, format),
		ContentType: exporter.ContentType(),
		Data:        data,
	}, nil
}

// ExportFileName nombre del archivo exportado para la fecha dada.
func ExportFileName(today time.Time, ext string) string {
	return fmt.Sprintf("%s-%s.%s", ExportFilePrefix, today.Format(entity.DateLayout), ext)
}
