// Package sqlite implementa los repositorios sobre una base SQLite embebida
// (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/internal/domain/repository"
)

// querier lo cumplen *sql.DB y *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ ports.TxRunner = (*Store)(nil)

// Store base SQLite con migraciones aplicadas. Hace también de TxRunner.
type Store struct {
	db *sql.DB
}

var registerFold sync.Once

// Open abre (o crea) la base en path y aplica las migraciones embebidas.
// Las transacciones arrancan con BEGIN IMMEDIATE: toman el bloqueo de escritura
// al empezar, lo que serializa las altas y bajas que compiten por la misma fila.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}
	var regErr error
	registerFold.Do(func() { regErr = registerFoldFunction() })
	if regErr != nil {
		return nil, fmt.Errorf("sqlite: register fold(): %w", regErr)
	}

	dsn := filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la base.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stores, Workers, Assignments y Sections devuelven repos fuera de transacción.
func (s *Store) Stores() *StoreRepo           { return &StoreRepo{q: s.db} }
func (s *Store) Workers() *WorkerRepo         { return &WorkerRepo{q: s.db} }
func (s *Store) Assignments() *AssignmentRepo { return &AssignmentRepo{q: s.db} }
func (s *Store) Sections() *SectionRepo       { return &SectionRepo{q: s.db} }

// Run ejecuta fn en una transacción; Rollback si fn devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	workerRepo repository.WorkerRepository,
	assignmentRepo repository.AssignmentRepository,
	sectionRepo repository.SectionRepository,
) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&StoreRepo{q: tx}, &WorkerRepo{q: tx}, &AssignmentRepo{q: tx}, &SectionRepo{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// registerFoldFunction expone fold(text) a SQL: plegado Unicode de mayúsculas,
// que LIKE de SQLite solo hace para ASCII.
func registerFoldFunction() error {
	return msqlite.RegisterDeterministicScalarFunction("fold", 1,
		func(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case string:
				return cases.Fold().String(v), nil
			case []byte:
				return cases.Fold().String(string(v)), nil
			case nil:
				return nil, nil
			default:
				return nil, fmt.Errorf("fold: tipo no soportado %T", v)
			}
		})
}

func isConstraint(err error, codes ...int) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	for _, c := range codes {
		if sqliteErr.Code() == c {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

func scalarInt(ctx context.Context, q querier, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
