package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stockpro/internal/application/auth"
	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
)

// UserUseCase administración de la lista editable de usuarios (solo admin).
// Los cambios no alteran el almacén de credenciales usado por el login.
type UserUseCase struct {
	dir repository.UserDirectory
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(dir repository.UserDirectory) *UserUseCase {
	return &UserUseCase{dir: dir}
}

// List devuelve todos los usuarios sin contraseña.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.dir.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserFromEntity(u))
	}
	return &dto.UserListResponse{Items: items, StorageKey: auth.UsersStorageKey}, nil
}

// Create agrega un usuario. Todos los campos son obligatorios; usuario repetido = ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	u := &entity.Credential{
		Username: strings.TrimSpace(in.Username),
		Password: in.Password,
		Role:     strings.TrimSpace(in.Role),
		Unit:     strings.TrimSpace(in.Unit),
	}
	if u.Username == "" || u.Password == "" || u.Role == "" || u.Unit == "" {
		return nil, fmt.Errorf("%w: usuario, senha, nivel y unidade son obligatorios", domain.ErrInvalidInput)
	}
	u.Role = entity.NormalizeRole(u.Role)
	if err := uc.dir.Create(ctx, u); err != nil {
		return nil, err
	}
	out := dto.UserFromEntity(u)
	return &out, nil
}

// Update edita nivel, unidade y, si se informa, la contraseña. El usuario no se renombra.
func (uc *UserUseCase) Update(ctx context.Context, username string, in dto.UserRequest) (*dto.UserResponse, error) {
	if in.Username != "" && strings.TrimSpace(in.Username) != username {
		return nil, fmt.Errorf("%w: usuario no puede modificarse", domain.ErrInvalidInput)
	}
	current, err := uc.dir.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	role := strings.TrimSpace(in.Role)
	unit := strings.TrimSpace(in.Unit)
	if role == "" || unit == "" {
		return nil, fmt.Errorf("%w: nivel y unidade son obligatorios", domain.ErrInvalidInput)
	}
	current.Role = entity.NormalizeRole(role)
	current.Unit = unit
	if in.Password != "" {
		current.Password = in.Password
	}
	if err := uc.dir.Update(ctx, current); err != nil {
		return nil, err
	}
	out := dto.UserFromEntity(current)
	return &out, nil
}

// Delete elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actor *entity.Credential, username string) error {
	if actor != nil && actor.Username == username {
		return fmt.Errorf("%w: no es posible eliminar el propio usuario", domain.ErrForbidden)
	}
	return uc.dir.Delete(ctx, username)
}
