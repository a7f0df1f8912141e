package memory

import (
	"context"

	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones con el mutex de la base. Si fn devuelve
// error se restaura la copia tomada al empezar.
type TxRunner struct {
	db *DB
}

// NewTxRunner crea el runner sobre db.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

func (t *TxRunner) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	workerRepo repository.WorkerRepository,
	assignmentRepo repository.AssignmentRepository,
	sectionRepo repository.SectionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	snapshot := t.db.data.clone()
	tx := scope{db: t.db, inTx: true}
	err := fn(&StoreRepo{tx}, &WorkerRepo{tx}, &AssignmentRepo{tx}, &SectionRepo{tx})
	if err != nil {
		t.db.data = snapshot
		return err
	}
	return nil
}
