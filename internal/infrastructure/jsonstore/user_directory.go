package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
)

var _ repository.UserDirectory = (*UserDirectory)(nil)

// UserDirectory lista editable de usuarios (usuarios_data.json). No afecta al login.
type UserDirectory struct {
	mu    sync.RWMutex
	path  string
	users []*entity.Credential
}

// OpenUserDirectory abre path; si no existe se crea con una copia de seed.
func OpenUserDirectory(path string, seed []*entity.Credential) (*UserDirectory, error) {
	d := &UserDirectory{path: path}
	users, err := readCredentials(path)
	switch {
	case err == nil:
		d.users = users
		return d, nil
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("jsonstore: crear directorio: %w", err)
		}
		d.users = make([]*entity.Credential, len(seed))
		for i, c := range seed {
			d.users[i] = cloneCredential(c)
		}
		if err := d.flushLocked(d.users); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("jsonstore: usuarios: %w", err)
	}
}

func (d *UserDirectory) flushLocked(users []*entity.Credential) error {
	recs := make([]credentialRecord, len(users))
	for i, u := range users {
		recs[i] = credentialToRecord(u)
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: codificar usuarios: %w", err)
	}
	return writeFileAtomic(d.path, b)
}

func (d *UserDirectory) indexOf(username string) int {
	for i, u := range d.users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

// mutate aplica fn a una copia de la lista y la publica solo si el archivo se escribió.
func (d *UserDirectory) mutate(ctx context.Context, fn func(users []*entity.Credential) ([]*entity.Credential, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := make([]*entity.Credential, len(d.users))
	for i, u := range d.users {
		work[i] = cloneCredential(u)
	}
	work, err := fn(work)
	if err != nil {
		return err
	}
	if err := d.flushLocked(work); err != nil {
		return err
	}
	d.users = work
	return nil
}

// List devuelve copia de la lista.
func (d *UserDirectory) List(_ context.Context) ([]*entity.Credential, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*entity.Credential, len(d.users))
	for i, u := range d.users {
		out[i] = cloneCredential(u)
	}
	return out, nil
}

// Get (nil, nil) si no existe.
func (d *UserDirectory) Get(_ context.Context, username string) (*entity.Credential, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i := d.indexOf(username); i >= 0 {
		return cloneCredential(d.users[i]), nil
	}
	return nil, nil
}

// Create agrega al final; usuario repetido = ErrDuplicate.
func (d *UserDirectory) Create(ctx context.Context, user *entity.Credential) error {
	return d.mutate(ctx, func(users []*entity.Credential) ([]*entity.Credential, error) {
		if d.indexOf(user.Username) >= 0 {
			return nil, domain.ErrDuplicate
		}
		return append(users, cloneCredential(user)), nil
	})
}

// Update reemplaza el registro con el mismo usuario.
func (d *UserDirectory) Update(ctx context.Context, user *entity.Credential) error {
	return d.mutate(ctx, func(users []*entity.Credential) ([]*entity.Credential, error) {
		i := d.indexOf(user.Username)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		users[i] = cloneCredential(user)
		return users, nil
	})
}

// Delete elimina por usuario.
func (d *UserDirectory) Delete(ctx context.Context, username string) error {
	return d.mutate(ctx, func(users []*entity.Credential) ([]*entity.Credential, error) {
		i := d.indexOf(username)
		if i < 0 {
			return nil, domain.ErrNotFound
		}
		return append(users[:i], users[i+1:]...), nil
	})
}
