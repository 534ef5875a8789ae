// seed genera un script SQL para poblar PostgreSQL a partir de los archivos JSON
// del driver json (db.json, usuarios.json y usuarios_data.json).
//
// Uso: go run ./cmd/seed -data ./data -out seed.sql [-latin1]
// Con -out vacío escribe en stdout. -latin1 transcodifica archivos ISO-8859-1 a UTF-8.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/stockpro/internal/domain/access"
	"github.com/jhoicas/stockpro/internal/domain/stock"
	"github.com/jhoicas/stockpro/internal/infrastructure/jsonstore"
	"github.com/jhoicas/stockpro/internal/infrastructure/postgres"
)

func main() {
	dataDir := flag.String("data", "./data", "directorio con db.json y usuarios.json")
	dbFile := flag.String("db", "db.json", "archivo de colecciones")
	usersFile := flag.String("users", "usuarios.json", "almacén de credenciales")
	overrideFile := flag.String("users-override", "usuarios_data.json", "lista editable de usuarios")
	out := flag.String("out", "", "archivo SQL de salida (vacío = stdout)")
	latin1 := flag.Bool("latin1", false, "los archivos de entrada están en ISO-8859-1")
	withSchema := flag.Bool("schema", true, "incluir el esquema antes de los INSERT")
	flag.Parse()

	dir := *dataDir
	if *latin1 {
		tmp, err := os.MkdirTemp("", "stockpro-seed-")
		if err != nil {
			fail("directorio temporal", err)
		}
		defer os.RemoveAll(tmp)
		for _, name := range []string{*dbFile, *usersFile, *overrideFile} {
			if err := transcodeLatin1(filepath.Join(dir, name), filepath.Join(tmp, name)); err != nil {
				fail("transcodificar "+name, err)
			}
		}
		dir = tmp
	}

	snap, err := loadSnapshot(context.Background(), dir, *dbFile, *usersFile, *overrideFile)
	if err != nil {
		fail("leer archivos JSON", err)
	}

	var buf bytes.Buffer
	if *withSchema {
		schema, err := postgres.Schema()
		if err != nil {
			fail("leer esquema", err)
		}
		buf.WriteString(schema)
		buf.WriteString("\n")
	}
	writeSQL(&buf, snap)

	if *out == "" {
		_, _ = os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fail("escribir "+*out, err)
	}
	fmt.Fprintf(os.Stderr, "Generado %s: %d productos, %d movimientos, %d credenciales, %d usuarios\n",
		*out, len(snap.products), len(snap.movements), len(snap.credentials), len(snap.users))
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	os.Exit(1)
}

// loadSnapshot lee los archivos con el mismo código que usa el servidor.
// db.json es obligatorio: jsonstore.Open crearía uno vacío.
func loadSnapshot(ctx context.Context, dir, dbFile, usersFile, overrideFile string) (*snapshot, error) {
	dbPath := filepath.Join(dir, dbFile)
	if _, err := os.Stat(dbPath); err != nil {
		return nil, err
	}
	store, err := jsonstore.Open(dbPath)
	if err != nil {
		return nil, err
	}
	all := access.Scope{Admin: true}
	products, err := jsonstore.NewProductRepository(store).List(ctx, all)
	if err != nil {
		return nil, err
	}
	movements, err := jsonstore.NewMovementRepository(store).List(ctx, all, stock.MovementFilter{})
	if err != nil {
		return nil, err
	}
	// el repositorio devuelve del más reciente al más antiguo; seq debe seguir el orden de registro
	for i, j := 0, len(movements)-1; i < j; i, j = i+1, j-1 {
		movements[i], movements[j] = movements[j], movements[i]
	}

	creds, err := jsonstore.OpenCredentialFile(filepath.Join(dir, usersFile))
	if err != nil {
		return nil, err
	}
	snap := &snapshot{products: products, movements: movements, credentials: creds.All()}

	overridePath := filepath.Join(dir, overrideFile)
	if _, err := os.Stat(overridePath); errors.Is(err, os.ErrNotExist) {
		// sin lista editable: la vista de usuarios arranca como copia de las credenciales
		snap.users = creds.All()
		return snap, nil
	}
	users, err := jsonstore.OpenUserDirectory(overridePath, nil)
	if err != nil {
		return nil, err
	}
	if snap.users, err = users.List(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

func transcodeLatin1(src, dst string) error {
	in, err := os.Open(src)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer in.Close()
	b, err := io.ReadAll(transform.NewReader(in, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}
