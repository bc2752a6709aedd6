package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec_DescribesAllOperations(t *testing.T) {
	var doc struct {
		Swagger string                                `json:"swagger"`
		Paths   map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(Spec(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)

	want := map[string][]string{
		"/authors":      {"get", "post"},
		"/authors/{id}": {"get", "put", "delete"},
		"/books":        {"get", "post"},
		"/books/{id}":   {"get", "put", "delete"},
	}
	for path, methods := range want {
		ops, ok := doc.Paths[path]
		require.True(t, ok, "missing path %s", path)
		for _, m := range methods {
			assert.Contains(t, ops, m, "%s %s", m, path)
		}
	}
}

func TestHandlers(t *testing.T) {
	w := httptest.NewRecorder()
	SpecHandler(w, httptest.NewRequest(http.MethodGet, SpecPath, nil))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.True(t, json.Valid(w.Body.Bytes()))

	w = httptest.NewRecorder()
	UIHandler(w, httptest.NewRequest(http.MethodGet, Path, nil))
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), uiCDN)

	w = httptest.NewRecorder()
	InitScriptHandler(w, httptest.NewRequest(http.MethodGet, Path+"/init.js", nil))
	assert.Contains(t, w.Body.String(), SpecPath)
}
