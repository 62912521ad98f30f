package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger hace panic en el arranque si el archivo del spec no
// existe. Este test fija que el spec viaja con el repo y que es JSON válido con
// las rutas principales, para que /docs siempre pueda montarse.
func TestSwaggerSpec_ExisteYEsValido(t *testing.T) {
	data, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json debe estar versionado en el repo")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &spec), "el spec debe ser JSON válido")

	assert.Equal(t, "2.0", spec.Swagger)
	for _, ruta := range []string{
		"/health",
		"/api/auth/login",
		"/api/auth/register",
		"/api/categories",
		"/api/products",
		"/api/products/{id}/closing-stock",
		"/api/stock",
		"/api/stock/history",
		"/api/dashboard/summary",
	} {
		assert.Contains(t, spec.Paths, ruta, "el spec debe documentar %s", ruta)
	}
}
