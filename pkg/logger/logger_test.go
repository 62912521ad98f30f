package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/pkg/logger"
)

// En production la salida es JSON y cada línea lleva el campo service.
func TestLogger_ProductionJSONConService(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "despensa-api",
		Writer:  &buf,
	})

	log.Info().Str("evento", "arranque").Msg("iniciando")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "la salida debe ser JSON")
	assert.Equal(t, "despensa-api", line["service"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "iniciando", line["message"])
	assert.Contains(t, line, "time")
}

// Un nivel mínimo de error suprime los mensajes info.
func TestLogger_NivelFiltraMensajes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "error", Writer: &buf})

	log.Info().Msg("no debería salir")
	assert.Zero(t, buf.Len(), "info por debajo del nivel error no debe escribirse")

	log.Error().Msg("sí sale")
	assert.Contains(t, buf.String(), "sí sale")
}

// Sin Service configurado la línea no lleva el campo.
func TestLogger_SinServiceNoAgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: &buf})

	log.Info().Msg("hola")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "service")
}
