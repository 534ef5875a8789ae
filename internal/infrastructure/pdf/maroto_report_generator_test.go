package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/infrastructure/pdf"
)

func TestExport_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator("StockPro")
	assert.Equal(t, "pdf", g.Format())
	assert.Equal(t, "application/pdf", g.ContentType())

	data, err := g.Export(&dto.MovementReportDTO{
		Filter: dto.MovementFilterRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"},
		Movements: []dto.MovementResponse{
			{ID: "m1", Date: "2025-01-02", ProductName: "Cabo HDMI", Type: "entry", Quantity: 5, Reason: "Compra"},
			{ID: "m2", Date: "2025-01-03", ProductName: "Cabo HDMI", Type: "exit", Quantity: 2, Reason: "Venda"},
		},
		Totals:      dto.MovementTotalsDTO{Entries: 5, Exits: 2, Count: 2},
		ByCategory:  []dto.CategoryTotalDTO{{Category: "Cabos", Quantity: 7}},
		GeneratedAt: "2025-02-01",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExport_SinMovimientos(t *testing.T) {
	data, err := pdf.NewMarotoReportGenerator("StockPro").Export(&dto.MovementReportDTO{GeneratedAt: "2025-02-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
