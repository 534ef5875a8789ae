package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialFile)(nil)

// credentialRecord forma de un usuario en usuarios.json.
type credentialRecord struct {
	Username string `json:"usuario"`
	Password string `json:"senha"`
	Role     string `json:"nivel"`
	Unit     string `json:"unidade"`
}

func (r credentialRecord) toEntity() *entity.Credential {
	return &entity.Credential{
		Username: r.Username,
		Password: r.Password,
		Role:     entity.NormalizeRole(r.Role),
		Unit:     r.Unit,
	}
}

func credentialToRecord(c *entity.Credential) credentialRecord {
	return credentialRecord{Username: c.Username, Password: c.Password, Role: c.Role, Unit: c.Unit}
}

func cloneCredential(c *entity.Credential) *entity.Credential {
	cp := *c
	return &cp
}

func readCredentials(path string) ([]*entity.Credential, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []credentialRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("jsonstore: decodificar %s: %w", path, err)
	}
	out := make([]*entity.Credential, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toEntity())
	}
	return out, nil
}

// CredentialFile almacén de credenciales de solo lectura (usuarios.json), cargado al abrir.
type CredentialFile struct {
	path  string
	creds []*entity.Credential
}

// OpenCredentialFile lee el arreglo de usuarios de path. El archivo es obligatorio.
func OpenCredentialFile(path string) (*CredentialFile, error) {
	creds, err := readCredentials(path)
	if err != nil {
		return nil, fmt.Errorf("jsonstore: credenciales: %w", err)
	}
	return &CredentialFile{path: path, creds: creds}, nil
}

// NewCredentialFromList construye el almacén en memoria; útil en tests.
func NewCredentialFromList(creds []*entity.Credential) *CredentialFile {
	out := make([]*entity.Credential, len(creds))
	for i, c := range creds {
		out[i] = cloneCredential(c)
		out[i].Role = entity.NormalizeRole(c.Role)
	}
	return &CredentialFile{creds: out}
}

// FindByUsername comparación exacta (sensible a mayúsculas). (nil, nil) si no existe.
func (f *CredentialFile) FindByUsername(_ context.Context, username string) (*entity.Credential, error) {
	for _, c := range f.creds {
		if c.Username == username {
			return cloneCredential(c), nil
		}
	}
	return nil, nil
}

// All copia de todas las credenciales, en el orden del archivo.
func (f *CredentialFile) All() []*entity.Credential {
	out := make([]*entity.Credential, len(f.creds))
	for i, c := range f.creds {
		out[i] = cloneCredential(c)
	}
	return out
}
