package jsonstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/infrastructure/jsonstore"
)

const usuariosJSON = `[
  {"usuario": "admin", "senha": "Mov@2025", "nivel": "admin", "unidade": "Matriz"},
  {"usuario": "itajai", "senha": "ita123", "nivel": "gerente", "unidade": "Itajaí"}
]`

func writeUsers(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usuarios.json")
	require.NoError(t, os.WriteFile(path, []byte(usuariosJSON), 0o600))
	return path
}

func TestCredentialFile_BusquedaExactaYRolNormalizado(t *testing.T) {
	f, err := jsonstore.OpenCredentialFile(writeUsers(t))
	require.NoError(t, err)
	ctx := context.Background()

	c, err := f.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, entity.RoleAdmin, c.Role)

	c, err = f.FindByUsername(ctx, "itajai")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUsuario, c.Role, "cualquier nivel distinto de admin es usuario")

	c, err = f.FindByUsername(ctx, "Admin")
	require.NoError(t, err)
	assert.Nil(t, c, "sensible a mayúsculas")
}

func TestOpenCredentialFile_Inexistente(t *testing.T) {
	_, err := jsonstore.OpenCredentialFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestUserDirectory_SembradoYCRUD(t *testing.T) {
	creds, err := jsonstore.OpenCredentialFile(writeUsers(t))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "usuarios_data.json")
	ctx := context.Background()

	dir, err := jsonstore.OpenUserDirectory(path, creds.All())
	require.NoError(t, err)
	list, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	nu := &entity.Credential{Username: "joinville", Password: "x", Role: entity.RoleUsuario, Unit: "Joinville"}
	require.NoError(t, dir.Create(ctx, nu))
	assert.ErrorIs(t, dir.Create(ctx, nu), domain.ErrDuplicate)

	nu.Unit = "Joinville SC"
	require.NoError(t, dir.Update(ctx, nu))
	require.NoError(t, dir.Delete(ctx, "itajai"))
	assert.ErrorIs(t, dir.Delete(ctx, "itajai"), domain.ErrNotFound)

	// persistido: al reabrir no se vuelve a sembrar
	reopened, err := jsonstore.OpenUserDirectory(path, creds.All())
	require.NoError(t, err)
	list, err = reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "admin", list[0].Username)
	assert.Equal(t, "Joinville SC", list[1].Unit)

	// la lista editable no toca el almacén de credenciales
	c, _ := creds.FindByUsername(ctx, "itajai")
	assert.NotNil(t, c)
}
