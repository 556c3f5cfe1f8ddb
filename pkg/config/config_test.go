package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/pkg/config"
)

// limpia las env que afectan la selección de driver (t.Setenv restaura al
// terminar; viper trata la env vacía como no seteada).
func clearStoreEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
}

func TestLoad_SinBaseConfiguradaElDriverEsMemoria(t *testing.T) {
	clearStoreEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Stock.Driver)
}

func TestLoad_ConDBHostElDriverEsPostgres(t *testing.T) {
	clearStoreEnv(t)
	t.Setenv("DB_HOST", "db.interna")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Stock.Driver)
	assert.Equal(t, "db.interna", cfg.DB.Host)
}

func TestLoad_ConDatabaseURLElDriverEsPostgres(t *testing.T) {
	clearStoreEnv(t)
	t.Setenv("DATABASE_URL", "postgresql://u:p@db:5432/bodega?sslmode=require")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Stock.Driver)
}

func TestLoad_StoreDriverExplicitoGanaSiempre(t *testing.T) {
	clearStoreEnv(t)
	t.Setenv("DB_HOST", "db.interna")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Stock.Driver)
}
