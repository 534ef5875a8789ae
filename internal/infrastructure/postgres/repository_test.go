package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// fakeQuerier registra la última sentencia y devuelve resultados programados.
type fakeQuerier struct {
	tag     string // command tag de Exec, ej "UPDATE 1"
	execErr error
	rowErr  error
	queried bool
	sql     string
	args    []any
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	return pgconn.NewCommandTag(f.tag), nil
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queried = true
	f.sql, f.args = sql, args
	return nil, errors.New("sin conexión")
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return fakeRow{err: f.rowErr}
}

type fakeRow struct{ err error }

func (r fakeRow) Scan(...any) error { return r.err }

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

// ─── ProductRepo ────────────────────────────────────────────────────────────

func TestProductRepo_CreateGeneraIDYEnviaTagsVacios(t *testing.T) {
	q := &fakeQuerier{tag: "INSERT 0 1"}
	p := &entity.Product{Name: "Caneta", Category: "Papelaria", CostPrice: decimal.RequireFromString("1.255"), UserID: "itajai"}

	require.NoError(t, NewProductRepository(q).Create(context.Background(), p))

	assert.NotEmpty(t, p.ID)
	assert.Contains(t, q.sql, "INSERT INTO products")
	require.Len(t, q.args, 12)
	assert.Equal(t, p.ID, q.args[0])
	assert.Equal(t, []string{}, q.args[5])
	assert.True(t, decimal.RequireFromString("1.255").Equal(q.args[10].(decimal.Decimal)))
	assert.Equal(t, "itajai", q.args[11])
}

func TestProductRepo_CreateDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: uniqueViolation()}
	err := NewProductRepository(q).Create(context.Background(), &entity.Product{ID: "p1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRepo_GetInexistenteDevuelveNil(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	p, err := NewProductRepository(q).GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, []any{"nope"}, q.args)
}

func TestProductRepo_GetForUpdateBloqueaLaFila(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	_, err := NewProductRepository(q).GetForUpdate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Contains(t, q.sql, "FOR UPDATE")
}

func TestProductRepo_GetErrorSeEnvuelve(t *testing.T) {
	q := &fakeQuerier{rowErr: errors.New("conexión perdida")}
	_, err := NewProductRepository(q).GetByID(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get product")
}

func TestProductRepo_SinFilasAfectadasEsNotFound(t *testing.T) {
	repo := NewProductRepository(&fakeQuerier{tag: "UPDATE 0"})
	assert.ErrorIs(t, repo.Update(context.Background(), &entity.Product{ID: "p1"}), domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStock(context.Background(), "p1", 3), domain.ErrNotFound)

	repo = NewProductRepository(&fakeQuerier{tag: "DELETE 0"})
	assert.ErrorIs(t, repo.Delete(context.Background(), "p1"), domain.ErrNotFound)
}

func TestProductRepo_UpdateNoTocaElDueno(t *testing.T) {
	q := &fakeQuerier{tag: "UPDATE 1"}
	require.NoError(t, NewProductRepository(q).Update(context.Background(), &entity.Product{ID: "p1", UserID: "otro"}))
	assert.NotContains(t, q.sql, "user_id")
	assert.Len(t, q.args, 11)
}

func TestProductRepo_UpdateStockArgs(t *testing.T) {
	q := &fakeQuerier{tag: "UPDATE 1"}
	require.NoError(t, NewProductRepository(q).UpdateStock(context.Background(), "p1", -7))
	assert.Equal(t, []any{"p1", -7}, q.args)
}

func TestProductRepo_ListAlcanceVacioNoConsulta(t *testing.T) {
	q := &fakeQuerier{}
	list, err := NewProductRepository(q).List(context.Background(), access.Scope{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.False(t, q.queried)
}

func TestProductRepo_ListUsuarioFiltraPorDueno(t *testing.T) {
	q := &fakeQuerier{}
	_, err := NewProductRepository(q).List(context.Background(), access.Scope{UserID: "itajai"})
	require.Error(t, err)
	assert.Contains(t, q.sql, "WHERE user_id = $1")
	assert.Equal(t, []any{"itajai"}, q.args)
}

// ─── MovementRepo ───────────────────────────────────────────────────────────

func TestMovementRepo_CreateConvierteLaFecha(t *testing.T) {
	q := &fakeQuerier{tag: "INSERT 0 1"}
	m := &entity.StockMovement{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: 3, Date: "2026-10-18", Timestamp: 1}
	require.NoError(t, NewMovementRepository(q).Create(context.Background(), m))
	assert.NotEmpty(t, m.ID)
	assert.Contains(t, q.sql, "$7::text::date")
	assert.Equal(t, "2026-10-18", q.args[6])
}

func TestMovementRepo_CreateDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: uniqueViolation()}
	err := NewMovementRepository(q).Create(context.Background(), &entity.StockMovement{ID: "m1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMovementRepo_ListAlcanceVacioNoConsulta(t *testing.T) {
	q := &fakeQuerier{}
	list, err := NewMovementRepository(q).List(context.Background(), access.Scope{}, stock.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.False(t, q.queried)
}

// ─── UserRepo ───────────────────────────────────────────────────────────────

func TestUserRepo_TablaSegunConstructor(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	u, err := NewCredentialRepository(q).FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Contains(t, q.sql, "FROM credentials")

	_, err = NewUserDirectory(q).Get(context.Background(), "admin")
	require.NoError(t, err)
	assert.Contains(t, q.sql, "FROM managed_users")
}

func TestUserRepo_CreateDuplicado(t *testing.T) {
	q := &fakeQuerier{execErr: uniqueViolation()}
	err := NewUserDirectory(q).Create(context.Background(), &entity.Credential{Username: "admin"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserRepo_SinFilasAfectadasEsNotFound(t *testing.T) {
	dir := NewUserDirectory(&fakeQuerier{tag: "UPDATE 0"})
	assert.ErrorIs(t, dir.Update(context.Background(), &entity.Credential{Username: "x"}), domain.ErrNotFound)

	dir = NewUserDirectory(&fakeQuerier{tag: "DELETE 0"})
	assert.ErrorIs(t, dir.Delete(context.Background(), "x"), domain.ErrNotFound)
}
