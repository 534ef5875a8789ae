package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/stockpro/internal/domain/entity"
	"github.com/jhoicas/stockpro/internal/domain/stock"
)

// Colecciones de db.json.
const (
	collectionProducts  = "products"
	collectionMovements = "movements"
)

// state contenido en memoria de db.json.
type state struct {
	products  []*entity.Product
	movements []*entity.StockMovement
}

func (st *state) clone() *state {
	c := &state{
		products:  make([]*entity.Product, len(st.products)),
		movements: make([]*entity.StockMovement, len(st.movements)),
	}
	for i, p := range st.products {
		c.products[i] = cloneProduct(p)
	}
	for i, m := range st.movements {
		c.movements[i] = cloneMovement(m)
	}
	return c
}

// accessor abstrae el acceso al estado: directo al Store o dentro de una transacción ya abierta.
type accessor interface {
	read(fn func(*state) error) error
	write(ctx context.Context, fn func(*state) error) error
}

// Store base de datos en un archivo JSON con el formato de json-server
// ({"products":[...],"movements":[...]}). Cada escritura trabaja sobre una copia del
// estado y solo la publica si el archivo se reescribió con éxito; un fallo no deja
// cambios parciales ni en memoria ni en disco.
type Store struct {
	mu    sync.RWMutex
	path  string
	st    *state
	extra map[string]json.RawMessage // otras colecciones del archivo, se preservan tal cual
}

// Open abre (o crea vacío) el archivo en path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio: %w", err)
	}
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path ruta del archivo.
func (s *Store) Path() string { return s.path }

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("jsonstore: leer %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		s.st = &state{}
		s.extra = map[string]json.RawMessage{}
		return s.flushLocked(s.st)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("jsonstore: decodificar %s: %w", s.path, err)
	}
	var prodRecs []productRecord
	if r, ok := raw[collectionProducts]; ok {
		if err := json.Unmarshal(r, &prodRecs); err != nil {
			return fmt.Errorf("jsonstore: decodificar products: %w", err)
		}
	}
	var movRecs []movementRecord
	if r, ok := raw[collectionMovements]; ok {
		if err := json.Unmarshal(r, &movRecs); err != nil {
			return fmt.Errorf("jsonstore: decodificar movements: %w", err)
		}
	}
	delete(raw, collectionProducts)
	delete(raw, collectionMovements)

	st := &state{
		products:  make([]*entity.Product, 0, len(prodRecs)),
		movements: make([]*entity.StockMovement, 0, len(movRecs)),
	}
	for _, r := range movRecs {
		st.movements = append(st.movements, r.toEntity())
	}
	for _, r := range prodRecs {
		p, err := r.toEntity()
		if err != nil {
			return fmt.Errorf("jsonstore: producto %s: %w", r.ID, err)
		}
		if r.InitialStock == nil {
			// registros anteriores a la línea base: se deduce del ledger
			p.InitialStock = p.CurrentStock - stock.LedgerSum(p.ID, st.movements)
		}
		st.products = append(st.products, p)
	}
	s.st = st
	s.extra = raw
	return nil
}

// flushLocked reescribe el archivo de forma atómica (archivo temporal + rename).
func (s *Store) flushLocked(st *state) error {
	doc := make(map[string]any, len(s.extra)+2)
	for k, v := range s.extra {
		doc[k] = v
	}
	prods := make([]productRecord, len(st.products))
	for i, p := range st.products {
		prods[i] = productToRecord(p)
	}
	movs := make([]movementRecord, len(st.movements))
	for i, m := range st.movements {
		movs[i] = movementToRecord(m)
	}
	doc[collectionProducts] = prods
	doc[collectionMovements] = movs

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: codificar: %w", err)
	}
	return writeFileAtomic(s.path, b)
}

func (s *Store) read(fn func(*state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// write ejecuta fn sobre una copia del estado; si fn y el flush terminan bien, la copia reemplaza al estado.
func (s *Store) write(ctx context.Context, fn func(*state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(work); err != nil {
		return err
	}
	if err := s.flushLocked(work); err != nil {
		return err
	}
	s.st = work
	return nil
}

// txState acceso directo al estado de trabajo de una transacción en curso (el lock ya lo tiene el Store).
type txState struct {
	st *state
}

func (t txState) read(fn func(*state) error) error { return fn(t.st) }

func (t txState) write(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(t.st)
}
