package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/pkg/config"
)

func TestConfigurePool(t *testing.T) {
	cfg := config.DBConfig{Host: "localhost", Port: 5432, User: "app", Password: "p@ss", DBName: "backoffice", SSLMode: "disable"}
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	require.NoError(t, err)

	configurePool(pc, 0)
	assert.Equal(t, int32(defaultMaxConns), pc.MaxConns)
	assert.NotNil(t, pc.AfterConnect)
	assert.Equal(t, "p@ss", pc.ConnConfig.Password)

	configurePool(pc, 7)
	assert.Equal(t, int32(7), pc.MaxConns)
}
