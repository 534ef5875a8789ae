package http_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockpro/docs"
)

type swaggerDoc struct {
	Paths               map[string]map[string]struct{ Security []map[string][]string }
	SecurityDefinitions map[string]json.RawMessage
}

func readSwaggerDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc
}

// ─── Documentación OpenAPI ──────────────────────────────────────────────────

func TestDocs_AnotacionesUsanEsquemaDefinido(t *testing.T) {
	doc := readSwaggerDoc(t)
	files, err := filepath.Glob("*_handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	re := regexp.MustCompile(`@Security\s+(\S+)`)
	found := 0
	for _, f := range files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range re.FindAllStringSubmatch(string(src), -1) {
			found++
			assert.Contains(t, doc.SecurityDefinitions, m[1], "%s: esquema %q", f, m[1])
		}
	}
	assert.Positive(t, found)
}

func TestDocs_RutasProtegidasReferencianBearerAuth(t *testing.T) {
	doc := readSwaggerDoc(t)
	for path, ops := range doc.Paths {
		for method, op := range ops {
			for _, sec := range op.Security {
				for name := range sec {
					assert.Contains(t, doc.SecurityDefinitions, name, "%s %s", method, path)
				}
			}
		}
	}
	assert.NotEmpty(t, doc.Paths["/api/auth/me"]["get"].Security)
	assert.Empty(t, doc.Paths["/api/auth/login"]["post"].Security, "login es público")
}
