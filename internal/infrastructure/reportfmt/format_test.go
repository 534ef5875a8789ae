package reportfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/infrastructure/reportfmt"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "05/03/2025", reportfmt.Date("2025-03-05"))
	assert.Equal(t, "ontem", reportfmt.Date("ontem"))
}

func TestInt_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "1.234.567", reportfmt.Int(1234567))
	assert.Equal(t, "-7", reportfmt.Int(-7))
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "01/01/2025 a 31/01/2025", reportfmt.Period(dto.MovementFilterRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"}))
	assert.Equal(t, "todo o período", reportfmt.Period(dto.MovementFilterRequest{}))
}

func TestRow(t *testing.T) {
	r := reportfmt.Row(dto.MovementResponse{Date: "2025-01-02", ProductName: "Mouse", Type: "exit", Quantity: 1500, Reason: "Venda"})
	assert.Equal(t, []string{"02/01/2025", "Mouse", "Saída", "1.500", "Venda", ""}, r)
}
