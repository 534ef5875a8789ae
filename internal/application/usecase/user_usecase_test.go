package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/usecase"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/infrastructure/jsonstore"
)

func newUsers(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	dir, err := jsonstore.OpenUserDirectory(filepath.Join(t.TempDir(), "usuarios_data.json"), []*entity.Credential{
		{Username: "admin", Password: "Mov@2025", Role: entity.RoleAdmin, Unit: "Matriz"},
	})
	require.NoError(t, err)
	return usecase.NewUserUseCase(dir)
}

func TestUserUseCase_CRUD(t *testing.T) {
	uc := newUsers(t)
	ctx := context.Background()

	u, err := uc.Create(ctx, dto.UserRequest{Username: "itajai", Password: "x", Role: "gerente", Unit: "Itajaí"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUsuario, u.Role)

	_, err = uc.Create(ctx, dto.UserRequest{Username: "itajai", Password: "y", Role: "usuario", Unit: "Itajaí"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.UserRequest{Username: "sem-unidade", Password: "y", Role: "usuario"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	u, err = uc.Update(ctx, "itajai", dto.UserRequest{Role: "admin", Unit: "Itajaí SC"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	_, err = uc.Update(ctx, "itajai", dto.UserRequest{Username: "outro", Role: "admin", Unit: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, "nope", dto.UserRequest{Role: "admin", Unit: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, "usuarios_data", list.StorageKey)

	require.NoError(t, uc.Delete(ctx, &entity.Credential{Username: "admin"}, "itajai"))
	assert.ErrorIs(t, uc.Delete(ctx, &entity.Credential{Username: "admin"}, "itajai"), domain.ErrNotFound)
}

func TestUserUseCase_AdminNoSeEliminaASiMismo(t *testing.T) {
	uc := newUsers(t)
	err := uc.Delete(context.Background(), &entity.Credential{Username: "admin", Role: entity.RoleAdmin}, "admin")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
