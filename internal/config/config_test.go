package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.mercadolibre.com", cfg.Meli.BaseURL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Contains(t, cfg.Database.DSN(), "dbname=sellers_meli")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MELI_BASE_URL", "http://localhost:4010")
	t.Setenv("DB_NAME", "meli_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Address())
	assert.Equal(t, "http://localhost:4010", cfg.Meli.BaseURL)
	assert.Contains(t, cfg.Database.DSN(), "dbname=meli_test")
}
