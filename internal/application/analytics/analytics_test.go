package analytics_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/application/analytics"
	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/infrastructure/csvexport"
	"github.com/jhoicas/stockpro/internal/infrastructure/jsonstore"
)

// ─── Helpers ────────────────────────────────────────────────────────────────

var (
	today    = time.Date(2026, time.October, 18, 15, 0, 0, 0, time.UTC)
	admin    = &entity.Credential{Username: "admin", Role: entity.RoleAdmin}
	itajai   = &entity.Credential{Username: "itajai", Role: entity.RoleUsuario}
	blumenau = &entity.Credential{Username: "blumenau", Role: entity.RoleUsuario}
)

type exportCounter struct{ formats []string }

func (m *exportCounter) MovementRecorded(string, int) {}
func (m *exportCounter) LoginAttempt(bool)            {}
func (m *exportCounter) ActiveSessions(int)           {}
func (m *exportCounter) ReportExported(f string)      { m.formats = append(m.formats, f) }

type fixture struct {
	products *jsonstore.ProductRepository
	movs     *jsonstore.MovementRepository
	seq      int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := jsonstore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return &fixture{
		products: jsonstore.NewProductRepository(store),
		movs:     jsonstore.NewMovementRepository(store),
	}
}

func (f *fixture) product(t *testing.T, id, owner, category string, current, minStock int, cost string) {
	t.Helper()
	require.NoError(t, f.products.Create(context.Background(), &entity.Product{
		ID: id, Name: "Produto " + id, Category: category, Unit: entity.DefaultUnit,
		CurrentStock: current, InitialStock: current, MinStock: minStock,
		CostPrice: decimal.RequireFromString(cost), UserID: owner,
	}))
}

func (f *fixture) movement(t *testing.T, productID, owner, typ string, qty int, daysAgo int) {
	t.Helper()
	f.seq++
	require.NoError(t, f.movs.Create(context.Background(), &entity.StockMovement{
		ProductID: productID, ProductName: "Produto " + productID, Type: typ, Quantity: qty,
		Reason: entity.DefaultReason, Date: today.AddDate(0, 0, -daysAgo).Format(entity.DateLayout),
		Timestamp: f.seq, UserID: owner,
	}))
}

// ─── Dashboard ──────────────────────────────────────────────────────────────

func TestGetSummary_TotalesYSerieDeSieteDias(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p1", "itajai", "Cabos", 10, 5, "2.50")
	f.product(t, "p2", "itajai", "Cabos", 2, 5, "10")
	f.product(t, "p3", "blumenau", "Redes", 7, 0, "1")
	f.movement(t, "p1", "itajai", entity.MovementTypeEntry, 4, 0)
	f.movement(t, "p1", "itajai", entity.MovementTypeExit, 1, 6)
	f.movement(t, "p2", "itajai", entity.MovementTypeExit, 3, 7) // fuera de la ventana

	uc := analytics.NewDashboardUseCase(f.products, f.movs)
	sum, err := uc.GetSummary(context.Background(), itajai, today)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.TotalProducts)
	assert.Equal(t, 12, sum.TotalStock)
	assert.True(t, decimal.RequireFromString("45").Equal(sum.TotalValue), sum.TotalValue.String())
	assert.Equal(t, 1, sum.LowStockCount)
	require.Len(t, sum.LowStockProducts, 1)
	assert.Equal(t, "p2", sum.LowStockProducts[0].ID)

	require.Len(t, sum.Last7Days, 7)
	assert.Equal(t, "2026-10-12", sum.Last7Days[0].Date)
	assert.Equal(t, 1, sum.Last7Days[0].Exits)
	assert.Equal(t, "2026-10-18", sum.Last7Days[6].Date)
	assert.Equal(t, 4, sum.Last7Days[6].Entries)

	assert.Equal(t, []dto.CategoryTotalDTO{{Category: "Cabos", Quantity: 12}}, sum.StockByCategory)
	assert.Len(t, sum.RecentMovements, 3)
	assert.Equal(t, "Outubro 2026", sum.DateLabel)
}

func TestGetSummary_AdminVeTodoYRecientesLimitados(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p1", "itajai", "Cabos", 10, 0, "1")
	f.product(t, "p3", "blumenau", "Redes", 7, 0, "1")
	for i := 0; i < 8; i++ {
		f.movement(t, "p1", "itajai", entity.MovementTypeEntry, 1, 0)
	}

	sum, err := analytics.NewDashboardUseCase(f.products, f.movs).GetSummary(context.Background(), admin, today)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalProducts)
	assert.Len(t, sum.RecentMovements, 5)
	assert.Equal(t, int64(8), sum.RecentMovements[0].Timestamp, "el más reciente primero")
}

func TestGetSummary_UsuarioSinDatos(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p1", "itajai", "Cabos", 10, 0, "1")

	sum, err := analytics.NewDashboardUseCase(f.products, f.movs).GetSummary(context.Background(), blumenau, today)
	require.NoError(t, err)
	assert.Zero(t, sum.TotalProducts)
	assert.True(t, sum.TotalValue.IsZero())
	assert.Len(t, sum.Last7Days, 7)
	assert.Empty(t, sum.RecentMovements)
}

// ─── Reportes ───────────────────────────────────────────────────────────────

func TestBuild_SinFechasUsaUltimos30Dias(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p1", "itajai", "Cabos", 10, 0, "1")
	f.product(t, "p2", "itajai", "Redes", 10, 0, "1")
	f.movement(t, "p1", "itajai", entity.MovementTypeEntry, 5, 0)
	f.movement(t, "p2", "itajai", entity.MovementTypeExit, 2, 29)
	f.movement(t, "p1", "itajai", entity.MovementTypeEntry, 9, 30) // fuera

	uc := analytics.NewReportUseCase(f.products, f.movs, nil)
	report, err := uc.Build(context.Background(), itajai, dto.MovementFilterRequest{}, today)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-19", report.Filter.StartDate)
	assert.Equal(t, "2026-10-18", report.Filter.EndDate)
	assert.Equal(t, dto.MovementTotalsDTO{Entries: 5, Exits: 2, Count: 2}, report.Totals)
	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2026-09-19", report.Daily[0].Date)
	assert.Equal(t, []dto.CategoryTotalDTO{{Category: "Cabos", Quantity: 5}, {Category: "Redes", Quantity: 2}}, report.ByCategory)
	assert.Equal(t, "2026-10-18", report.GeneratedAt)
}

func TestBuild_FiltroPorTipoYProducto(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p1", "itajai", "Cabos", 10, 0, "1")
	f.product(t, "p2", "itajai", "Cabos", 10, 0, "1")
	f.movement(t, "p1", "itajai", entity.MovementTypeEntry, 5, 1)
	f.movement(t, "p1", "itajai", entity.MovementTypeExit, 2, 1)
	f.movement(t, "p2", "itajai", entity.MovementTypeExit, 3, 1)

	uc := analytics.NewReportUseCase(f.products, f.movs, nil)
	report, err := uc.Build(context.Background(), itajai, dto.MovementFilterRequest{
		ProductID: "p1", Type: entity.MovementTypeExit, StartDate: "2026-10-01",
	}, today)
	require.NoError(t, err)
	require.Len(t, report.Movements, 1)
	assert.Equal(t, 2, report.Movements[0].Quantity)
	assert.Equal(t, "2026-10-01", report.Filter.StartDate)
	assert.Empty(t, report.Filter.EndDate, "con una fecha informada no se aplica la ventana por defecto")
}

func TestBuild_FechasInvertidas(t *testing.T) {
	f := newFixture(t)
	uc := analytics.NewReportUseCase(f.products, f.movs, nil)
	_, err := uc.Build(context.Background(), admin, dto.MovementFilterRequest{StartDate: "2026-10-10", EndDate: "2026-10-01"}, today)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_CSVNombreYMetrica(t *testing.T) {
	f := newFixture(t)
	f.product(t, "p1", "itajai", "Cabos", 10, 0, "1")
	f.movement(t, "p1", "itajai", entity.MovementTypeEntry, 5, 0)
	metrics := &exportCounter{}

	uc := analytics.NewReportUseCase(f.products, f.movs, metrics, csvexport.New())
	assert.Equal(t, []string{"csv"}, uc.Formats())

	file, err := uc.Export(context.Background(), admin, " CSV ", dto.MovementFilterRequest{}, today)
	require.NoError(t, err)
	assert.Equal(t, "relatorio-movimentacoes-2026-10-18.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.True(t, bytes.Contains(file.Data, []byte("Produto p1")))
	assert.Equal(t, []string{"csv"}, metrics.formats)
}

func TestExport_FormatoNoSoportado(t *testing.T) {
	f := newFixture(t)
	uc := analytics.NewReportUseCase(f.products, f.movs, nil, csvexport.New())
	_, err := uc.Export(context.Background(), admin, "xlsx", dto.MovementFilterRequest{}, today)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "relatorio-movimentacoes-2026-10-18.pdf", analytics.ExportFileName(today, "pdf"))
}
