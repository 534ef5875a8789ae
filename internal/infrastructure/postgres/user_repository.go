package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
)

// Tablas de usuarios: credentials alimenta el login; managed_users es la lista editable
// de la vista de administración y no afecta al login.
const (
	credentialsTable  = "credentials"
	managedUsersTable = "managed_users"
)

var (
	_ repository.CredentialRepository = (*UserRepo)(nil)
	_ repository.UserDirectory        = (*UserRepo)(nil)
)

// UserRepo implementación de CredentialRepository y UserDirectory sobre una tabla de usuarios.
type UserRepo struct {
	q     Querier
	table string
}

// NewCredentialRepository repositorio del login (tabla credentials).
func NewCredentialRepository(q Querier) *UserRepo {
	return &UserRepo{q: q, table: credentialsTable}
}

// NewUserDirectory lista editable de usuarios (tabla managed_users).
func NewUserDirectory(q Querier) *UserRepo {
	return &UserRepo{q: q, table: managedUsersTable}
}

// FindByUsername comparación exacta (sensible a mayúsculas).
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	return r.Get(ctx, username)
}

// Get (nil, nil) si no existe.
func (r *UserRepo) Get(ctx context.Context, username string) (*entity.Credential, error) {
	query := `SELECT username, password, role, unit FROM ` + r.table + ` WHERE username = $1`
	var u entity.Credential
	err := r.q.QueryRow(ctx, query, username).Scan(&u.Username, &u.Password, &u.Role, &u.Unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List en orden de alta.
func (r *UserRepo) List(ctx context.Context) ([]*entity.Credential, error) {
	rows, err := r.q.Query(ctx, `SELECT username, password, role, unit FROM `+r.table+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Credential, 0)
	for rows.Next() {
		var u entity.Credential
		if err := rows.Scan(&u.Username, &u.Password, &u.Role, &u.Unit); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Create usuario repetido = ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, user *entity.Credential) error {
	query := `INSERT INTO ` + r.table + ` (username, password, role, unit) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, user.Username, user.Password, user.Role, user.Unit)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update reemplaza contraseña, nivel y unidad.
func (r *UserRepo) Update(ctx context.Context, user *entity.Credential) error {
	query := `UPDATE ` + r.table + ` SET password = $2, role = $3, unit = $4 WHERE username = $1`
	cmd, err := r.q.Exec(ctx, query, user.Username, user.Password, user.Role, user.Unit)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por usuario.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM `+r.table+` WHERE username = $1`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
