package repository

import (
	"context"

	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// CredentialRepository consulta el almacén de credenciales (lista estática).
type CredentialRepository interface {
	// FindByUsername devuelve (nil, nil) si no existe. Comparación sensible a mayúsculas.
	FindByUsername(ctx context.Context, username string) (*entity.Credential, error)
}

// UserDirectory lista de usuarios editable por la vista de administración.
// Independiente del CredentialRepository usado en el login.
type UserDirectory interface {
	List(ctx context.Context) ([]*entity.Credential, error)
	Get(ctx context.Context, username string) (*entity.Credential, error)
	Create(ctx context.Context, user *entity.Credential) error
	Update(ctx context.Context, user *entity.Credential) error
	Delete(ctx context.Context, username string) error
}
