package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/pkg/config"
)

func TestPoolConfigFor(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://u:p@localhost:5432/asignaciones?sslmode=disable", MaxConns: 4}
	pc, err := poolConfigFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, "localhost", pc.ConnConfig.Host)
	assert.NotNil(t, pc.ConnConfig.DialFunc)

	cfg.MaxConns = 0
	pc, err = poolConfigFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(defaultMaxConns), pc.MaxConns)
}

func TestLookupIPv4_Literales(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}
