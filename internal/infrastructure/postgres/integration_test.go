package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/internal/domain/stock"
	"github.com/jhoicas/stockpro/pkg/config"
)

// testPool conecta a STOCKPRO_TEST_DATABASE_URL, aplica las migraciones y vacía las tablas.
// Sin la variable el test se omite.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("STOCKPRO_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("STOCKPRO_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE products, movements, credentials, managed_users`)
	require.NoError(t, err)
	return pool
}

// ─── Productos ──────────────────────────────────────────────────────────────

func TestIntegration_ProductCRUDYScope(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProductRepository(pool)

	p := &entity.Product{
		Name: "Caneta", Category: "Papelaria", Unit: entity.DefaultUnit, Tags: []string{"azul"},
		CurrentStock: 10, InitialStock: 10, MinStock: 2,
		CostPrice: decimal.RequireFromString("1.2345"), UserID: "itajai",
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Cabo", Category: "Eletrônicos", UserID: "blumenau"}))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"azul"}, got.Tags)
	assert.True(t, p.CostPrice.Equal(got.CostPrice), "costPrice conserva la escala: %s", got.CostPrice)

	own, err := repo.List(ctx, access.Scope{UserID: "itajai"})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, p.ID, own[0].ID)

	all, err := repo.List(ctx, access.Scope{Admin: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got.Name = "Caneta azul"
	got.UserID = "otro"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Caneta azul", got.Name)
	assert.Equal(t, "itajai", got.UserID)

	assert.ErrorIs(t, repo.Create(ctx, &entity.Product{ID: p.ID, Name: "x", Category: "y", UserID: "z"}), domain.ErrDuplicate)
	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrNotFound)
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ─── TxRunner + ledger ──────────────────────────────────────────────────────

func TestIntegration_TxRunnerCommitYRollback(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	products := NewProductRepository(pool)
	movements := NewMovementRepository(pool)
	runner := NewTxRunner(pool)

	p := &entity.Product{Name: "Caneta", Category: "Papelaria", CurrentStock: 10, InitialStock: 10, UserID: "itajai"}
	require.NoError(t, products.Create(ctx, p))

	register := func(m *entity.StockMovement, fail error) error {
		return runner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
			locked, err := productRepo.GetForUpdate(ctx, p.ID)
			if err != nil {
				return err
			}
			stock.ApplyToProduct(locked, m)
			if err := productRepo.UpdateStock(ctx, locked.ID, locked.CurrentStock); err != nil {
				return err
			}
			if err := movRepo.Create(ctx, m); err != nil {
				return err
			}
			return fail
		})
	}

	entry := &entity.StockMovement{ProductID: p.ID, ProductName: p.Name, Type: entity.MovementTypeEntry,
		Quantity: 3, Reason: "Compra", Date: "2026-10-17", Timestamp: 1000, UserID: "itajai"}
	require.NoError(t, register(entry, nil))

	boom := errors.New("falla simulada")
	exit := &entity.StockMovement{ProductID: p.ID, ProductName: p.Name, Type: entity.MovementTypeExit,
		Quantity: 20, Reason: "Venda", Date: "2026-10-18", Timestamp: 2000, UserID: "itajai"}
	assert.ErrorIs(t, register(exit, boom), boom)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, got.CurrentStock, "el rollback descarta stock y movimiento")

	exit.ID = ""
	require.NoError(t, register(exit, nil))
	got, err = products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, -7, got.CurrentStock)

	list, err := movements.List(ctx, access.Scope{UserID: "itajai"}, stock.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.MovementTypeExit, list[0].Type, "del más reciente al más antiguo")
	assert.Equal(t, "2026-10-18", list[0].Date)

	ranged, err := movements.List(ctx, access.Scope{Admin: true}, stock.MovementFilter{StartDate: "2026-10-17", EndDate: "2026-10-17"})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, entity.MovementTypeEntry, ranged[0].Type)

	none, err := movements.List(ctx, access.Scope{UserID: "blumenau"}, stock.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// ─── Usuarios ───────────────────────────────────────────────────────────────

func TestIntegration_UserTablesIndependientes(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	creds := NewCredentialRepository(pool)
	dir := NewUserDirectory(pool)

	require.NoError(t, dir.Create(ctx, &entity.Credential{Username: "itajai", Password: "ita123", Role: entity.RoleUsuario, Unit: "Itajaí"}))
	require.NoError(t, dir.Create(ctx, &entity.Credential{Username: "admin", Password: "Mov@2025", Role: entity.RoleAdmin, Unit: "Matriz"}))
	assert.ErrorIs(t, dir.Create(ctx, &entity.Credential{Username: "admin", Password: "x"}), domain.ErrDuplicate)

	list, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "itajai", list[0].Username, "orden de alta")

	u, err := creds.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, u, "la lista editable no alimenta el login")

	require.NoError(t, dir.Update(ctx, &entity.Credential{Username: "itajai", Password: "nueva", Role: entity.RoleUsuario, Unit: "Itajaí"}))
	u, err = dir.Get(ctx, "itajai")
	require.NoError(t, err)
	assert.Equal(t, "nueva", u.Password)

	require.NoError(t, dir.Delete(ctx, "itajai"))
	assert.ErrorIs(t, dir.Delete(ctx, "itajai"), domain.ErrNotFound)
}
