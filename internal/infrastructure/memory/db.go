// Package memory implementa los repositorios sobre mapas en memoria. Se usa en
// tests y con STORAGE_DRIVER=memory; los datos se pierden al parar el proceso.
package memory

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Asignaciones-api/internal/domain/entity"
)

type pairKey struct {
	document string
	section  string
}

// state contenido de la base; solo se toca con DB.mu tomado.
type state struct {
	stores      map[string]entity.Store
	workers     map[string]entity.Worker
	assignments map[pairKey]entity.Assignment
	sections    map[string]entity.Section
}

func newState() *state {
	return &state{
		stores:      make(map[string]entity.Store),
		workers:     make(map[string]entity.Worker),
		assignments: make(map[pairKey]entity.Assignment),
		sections:    make(map[string]entity.Section),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.stores {
		c.stores[k] = v
	}
	for k, v := range s.workers {
		c.workers[k] = v
	}
	for k, v := range s.assignments {
		c.assignments[k] = v
	}
	for k, v := range s.sections {
		c.sections[k] = v
	}
	return c
}

// DB base en memoria compartida por todos los repositorios del paquete.
type DB struct {
	mu   sync.Mutex
	data *state
}

// NewDB crea una base vacía.
func NewDB() *DB {
	return &DB{data: newState()}
}

// scope da acceso al estado: fuera de transacción toma el mutex en cada operación;
// dentro, el mutex ya lo tiene TxRunner.
type scope struct {
	db   *DB
	inTx bool
}

func (s scope) read(fn func(*state)) {
	if !s.inTx {
		s.db.mu.Lock()
		defer s.db.mu.Unlock()
	}
	fn(s.db.data)
}

func (s scope) write(fn func(*state) error) error {
	if !s.inTx {
		s.db.mu.Lock()
		defer s.db.mu.Unlock()
	}
	return fn(s.db.data)
}

// containsFold búsqueda por subcadena sin distinguir mayúsculas (plegado Unicode).
func containsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

// withJoin rellena los campos de lectura que vienen del trabajador.
func withJoin(st *state, a entity.Assignment) *entity.Assignment {
	if w, ok := st.workers[a.WorkerDocument]; ok {
		a.WorkerName = w.Name
		a.StoreCode = w.StoreCode
	}
	return &a
}

func sortAssignments(list []*entity.Assignment) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].WorkerDocument != list[j].WorkerDocument {
			return list[i].WorkerDocument < list[j].WorkerDocument
		}
		return list[i].SectionName < list[j].SectionName
	})
}
