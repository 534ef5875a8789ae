package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/inventory"
	"github.com/jhoicas/stockpro/internal/application/usecase"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/stock"
	"github.com/jhoicas/stockpro/internal/infrastructure/jsonstore"
)

var (
	adminCred  = &entity.Credential{Username: "admin", Role: entity.RoleAdmin}
	itajaiCred = &entity.Credential{Username: "itajai", Role: entity.RoleUsuario}
)

type catalog struct {
	uc   *usecase.ProductUseCase
	movs *inventory.RegisterMovementUseCase
}

func newCatalog(t *testing.T) catalog {
	t.Helper()
	store, err := jsonstore.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	tx := jsonstore.NewTxRunner(store)
	return catalog{
		uc:   usecase.NewProductUseCase(jsonstore.NewProductRepository(store), tx),
		movs: inventory.NewRegisterMovementUseCase(tx, jsonstore.NewMovementRepository(store), nil),
	}
}

func create(t *testing.T, c catalog, actor *entity.Credential, name, category string, current, minStock int) *dto.ProductResponse {
	t.Helper()
	p, err := c.uc.Create(context.Background(), actor, dto.CreateProductRequest{
		Name: name, Category: category, CurrentStock: current, MinStock: minStock, CostPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return p
}

// ─── Create / validación ────────────────────────────────────────────────────

func TestCreate_DuenoYValoresPorDefecto(t *testing.T) {
	c := newCatalog(t)
	p, err := c.uc.Create(context.Background(), itajaiCred, dto.CreateProductRequest{
		Name: "  Cabo HDMI ", Category: "Cabos", Tags: []string{"hdmi", " ", "HDMI", "cabo"}, CurrentStock: 4, MinStock: 5,
		CostPrice: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cabo HDMI", p.Name)
	assert.Equal(t, "itajai", p.UserID)
	assert.Equal(t, entity.DefaultUnit, p.Unit)
	assert.Equal(t, []string{"hdmi", "HDMI", "cabo"}, p.Tags)
	assert.Equal(t, 4, p.InitialStock)
	assert.True(t, p.LowStock)
	assert.Equal(t, "50", p.StockValue.String())
}

func TestCreate_Validacion(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	bad := []dto.CreateProductRequest{
		{Category: "x"},
		{Name: "x"},
		{Name: "x", Category: "y", MinStock: -1},
		{Name: "x", Category: "y", CostPrice: decimal.NewFromInt(-1)},
		{Name: "x", Category: "y", CurrentStock: -3},
	}
	for _, in := range bad {
		_, err := c.uc.Create(ctx, adminCred, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ─── Acceso ─────────────────────────────────────────────────────────────────

func TestAcceso_NoAdminSoloVeYEditaLoPropio(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	mine := create(t, c, itajaiCred, "Mouse", "Periféricos", 1, 0)
	other := create(t, c, adminCred, "Teclado", "Periféricos", 1, 0)

	list, err := c.uc.List(ctx, itajaiCred, dto.ProductFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, mine.ID, list.Items[0].ID)

	all, err := c.uc.List(ctx, adminCred, dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	_, err = c.uc.GetByID(ctx, itajaiCred, other.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	name := "x"
	_, err = c.uc.Update(ctx, itajaiCred, other.ID, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, c.uc.Delete(ctx, itajaiCred, other.ID), domain.ErrForbidden)
	assert.ErrorIs(t, c.uc.Delete(ctx, itajaiCred, "nope"), domain.ErrNotFound)

	_, err = c.uc.GetByID(ctx, adminCred, mine.ID)
	assert.NoError(t, err, "admin accede a todo")
}

// ─── Update ─────────────────────────────────────────────────────────────────

func TestUpdate_AjusteManualDesplazaLineaBase(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	p := create(t, c, itajaiCred, "Mouse", "Periféricos", 10, 2)
	_, _, err := c.movs.RegisterEntry(ctx, inventory.MovementInputDTO{Scope: access.ScopeFor(itajaiCred), UserID: "itajai", ProductID: p.ID, Quantity: 5})
	require.NoError(t, err)

	stockValue := 12
	updated, err := c.uc.Update(ctx, itajaiCred, p.ID, dto.UpdateProductRequest{CurrentStock: &stockValue})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.CurrentStock)
	assert.Equal(t, 7, updated.InitialStock, "10 + (12 − 15)")
	assert.Equal(t, "itajai", updated.UserID)

	movs, err := c.movs.List(ctx, access.ScopeFor(itajaiCred), stock.MovementFilter{})
	require.NoError(t, err)
	assert.Equal(t, updated.CurrentStock, updated.InitialStock+5)
	assert.Len(t, movs, 1)

	empty := ""
	_, err = c.uc.Update(ctx, itajaiCred, p.ID, dto.UpdateProductRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, _ := c.uc.GetByID(ctx, itajaiCred, p.ID)
	assert.Equal(t, "Mouse", got.Name, "una edición inválida no se persiste")
}

// ─── Búsqueda ───────────────────────────────────────────────────────────────

func TestList_BusquedaSinAcentosYCategoria(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	_, err := c.uc.Create(ctx, adminCred, dto.CreateProductRequest{Name: "Cartucho", Category: "Impressão", Description: "Tinta preta", Tags: []string{"Reposição"}})
	require.NoError(t, err)
	create(t, c, adminCred, "Mouse", "Periféricos", 1, 0)

	res, err := c.uc.List(ctx, adminCred, dto.ProductFilter{Query: "REPOSICAO"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Cartucho", res.Items[0].Name)

	res, err = c.uc.List(ctx, adminCred, dto.ProductFilter{Query: "tinta"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = c.uc.List(ctx, adminCred, dto.ProductFilter{Category: "Periféricos"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Mouse", res.Items[0].Name)

	res, err = c.uc.List(ctx, adminCred, dto.ProductFilter{Category: "all", Sort: usecase.SortByName})
	require.NoError(t, err)
	assert.Equal(t, "Cartucho", res.Items[0].Name)
}

func TestCategoriesYLowStock(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()
	create(t, c, adminCred, "A", "Periféricos", 1, 5)
	create(t, c, adminCred, "B", "Cabos", 5, 5)
	create(t, c, adminCred, "C", "Cabos", 9, 5)
	create(t, c, adminCred, "D", "Áudio", 9, 5)

	cats, err := c.uc.Categories(ctx, adminCred)
	require.NoError(t, err)
	assert.Equal(t, []string{"Áudio", "Cabos", "Periféricos"}, cats.Items)

	low, err := c.uc.LowStock(ctx, adminCred)
	require.NoError(t, err)
	require.Equal(t, 2, low.Total, "el límite es inclusivo")
	assert.Equal(t, "A", low.Items[0].Name)
	assert.Equal(t, "B", low.Items[1].Name)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"Ação", "acao", "x", "X"}, usecase.NormalizeTags([]string{" Ação ", "acao", "", "x", "X", " x", "Ação"}))
	assert.Equal(t, []string{"Cabo", "cabo"}, usecase.NormalizeTags([]string{"Cabo", "cabo", "Cabo "}))
	assert.Empty(t, usecase.NormalizeTags(nil))
}
