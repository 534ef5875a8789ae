package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Cabo", UserID: "itajai"},
		{ID: "2", Name: "Parafuso", UserID: "admin"},
		{ID: "3", Name: "Chave", UserID: "blumenau"},
		{ID: "4", Name: "Fita", UserID: "itajai"},
	}
}

func TestFilter_NoAdminSoloVePropios(t *testing.T) {
	scope := access.Scope{UserID: "itajai"}
	got := access.Filter(sampleProducts(), scope)

	assert.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "itajai", p.UserID, "un usuario no admin nunca recibe registros ajenos")
	}
}

func TestFilter_AdminVeTodo(t *testing.T) {
	all := sampleProducts()
	got := access.Filter(all, access.Scope{UserID: "admin", Admin: true})

	assert.Len(t, got, len(all))
}

func TestFilter_ScopeVacioNoVeNada(t *testing.T) {
	got := access.Filter(sampleProducts(), access.Scope{})
	assert.Empty(t, got)
}

func TestFilter_Movimientos(t *testing.T) {
	movs := []*entity.StockMovement{
		{ID: "m1", UserID: "itajai"},
		{ID: "m2", UserID: "blumenau"},
	}
	got := access.Filter(movs, access.Scope{UserID: "blumenau"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, "m2", got[0].ID)
	}
}

func TestScopeFor(t *testing.T) {
	admin := access.ScopeFor(&entity.Credential{Username: "admin", Role: entity.RoleAdmin})
	assert.True(t, admin.Admin)
	assert.True(t, admin.Allows("cualquiera"))

	user := access.ScopeFor(&entity.Credential{Username: "itajai", Role: entity.RoleUsuario})
	assert.False(t, user.Admin)
	assert.True(t, user.Allows("itajai"))
	assert.False(t, user.Allows("admin"))

	assert.Equal(t, access.Scope{}, access.ScopeFor(nil))
}
