// Package storage elige el adaptador de persistencia según STORAGE_DRIVER y
// expone sus repositorios con las interfaces de dominio.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/memory"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Asignaciones-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Asignaciones-api/pkg/config"
)

// Backend repositorios y TxRunner de un mismo adaptador.
type Backend struct {
	Driver      string
	Stores      repository.StoreRepository
	Workers     repository.WorkerRepository
	Assignments repository.AssignmentRepository
	Sections    repository.SectionRepository
	TxRunner    ports.TxRunner

	close func()
}

// Close libera las conexiones del adaptador.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open abre el adaptador configurado y aplica sus migraciones.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: migraciones PostgreSQL: %w", err)
		}
		return &Backend{
			Driver:      config.DriverPostgres,
			Stores:      postgres.NewStoreRepository(pool),
			Workers:     postgres.NewWorkerRepository(pool),
			Assignments: postgres.NewAssignmentRepository(pool),
			Sections:    postgres.NewSectionRepository(pool),
			TxRunner:    postgres.NewTxRunner(pool),
			close:       pool.Close,
		}, nil

	case config.DriverSQLite:
		st, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("storage: abrir SQLite: %w", err)
		}
		return &Backend{
			Driver:      config.DriverSQLite,
			Stores:      st.Stores(),
			Workers:     st.Workers(),
			Assignments: st.Assignments(),
			Sections:    st.Sections(),
			TxRunner:    st,
			close:       func() { _ = st.Close() },
		}, nil

	case config.DriverMemory:
		db := memory.NewDB()
		return &Backend{
			Driver:      config.DriverMemory,
			Stores:      memory.NewStoreRepository(db),
			Workers:     memory.NewWorkerRepository(db),
			Assignments: memory.NewAssignmentRepository(db),
			Sections:    memory.NewSectionRepository(db),
			TxRunner:    memory.NewTxRunner(db),
		}, nil
	}
	return nil, fmt.Errorf("storage: driver no soportado: %q", cfg.Storage.Driver)
}
