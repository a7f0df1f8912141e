package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/storage"
	"github.com/jhoicas/Asignaciones-api/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	b, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}})
	require.NoError(t, err)
	defer b.Close()
	assert.Equal(t, config.DriverMemory, b.Driver)

	require.NoError(t, b.Stores.Create(context.Background(), &entity.Store{Code: "T001", Name: "Centro"}))
	n, err := b.Stores.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverSQLite},
		SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}
	b, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.Sections.Upsert(context.Background(), entity.Section{Name: "Horno", RequiredHours: 8}))
	s, err := b.Sections.GetByName(context.Background(), "Horno")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 8, s.RequiredHours)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "mongo"}})
	assert.Error(t, err)
}
