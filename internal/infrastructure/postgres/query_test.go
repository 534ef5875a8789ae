package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// ─── listMovementsQuery ─────────────────────────────────────────────────────

func TestListMovementsQuery_AdminSinFiltros(t *testing.T) {
	q, args, ok := listMovementsQuery(access.Scope{UserID: "admin", Admin: true}, stock.MovementFilter{})
	require.True(t, ok)
	assert.NotContains(t, q, "WHERE")
	assert.Contains(t, q, "ORDER BY created_ms DESC, seq DESC")
	assert.Empty(t, args)
}

func TestListMovementsQuery_UsuarioConFiltros(t *testing.T) {
	q, args, ok := listMovementsQuery(access.Scope{UserID: "itajai"}, stock.MovementFilter{
		ProductID: "p1", Type: "exit", StartDate: "2025-01-01", EndDate: "2025-01-31",
	})
	require.True(t, ok)
	assert.Contains(t, q, "WHERE user_id = $1 AND product_id = $2 AND type = $3 AND movement_date >= $4::text::date AND movement_date <= $5::text::date")
	assert.Equal(t, []any{"itajai", "p1", "exit", "2025-01-01", "2025-01-31"}, args)
}

func TestListMovementsQuery_AllEquivaleAVacio(t *testing.T) {
	q, args, ok := listMovementsQuery(access.Scope{Admin: true}, stock.MovementFilter{ProductID: "all", Type: "all"})
	require.True(t, ok)
	assert.NotContains(t, q, "WHERE")
	assert.Empty(t, args)
}

func TestListMovementsQuery_AlcanceVacioNoVeNada(t *testing.T) {
	_, _, ok := listMovementsQuery(access.Scope{}, stock.MovementFilter{})
	assert.False(t, ok)
}

// ─── Schema ─────────────────────────────────────────────────────────────────

func TestSchema_IncluyeTablas(t *testing.T) {
	sql, err := Schema()
	require.NoError(t, err)
	for _, table := range []string{"products", "movements", "credentials", "managed_users"} {
		assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestSchema_CostPriceSinEscalaFija(t *testing.T) {
	sql, err := Schema()
	require.NoError(t, err)
	// misma precisión que el almacén JSON: sin redondeo a 2 decimales
	assert.Regexp(t, `cost_price\s+NUMERIC\s+NOT NULL`, sql)
	assert.NotContains(t, sql, "NUMERIC(")
}
