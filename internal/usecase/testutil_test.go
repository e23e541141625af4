package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils/tests"
)

// stubConnPool backs the test gorm.DB. Repositories are mocked, so no SQL
// ever runs; only Begin/Commit/Rollback are exercised by the usecases.
// It must be a pointer type: gorm's Commit nil-checks the committer via
// reflection, which panics on a struct value.
type stubConnPool struct{}

func (*stubConnPool) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not implemented")
}

func (*stubConnPool) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errors.New("not implemented")
}

func (*stubConnPool) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (*stubConnPool) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return &sql.Row{}
}

func (p *stubConnPool) BeginTx(ctx context.Context, opts *sql.TxOptions) (gorm.ConnPool, error) {
	return p, nil
}

func (*stubConnPool) Commit() error   { return nil }
func (*stubConnPool) Rollback() error { return nil }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		ConnPool: &stubConnPool{},
		Logger:   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return db
}

// Guards the transaction boundary every transactional usecase relies on.
func TestTestDBTransactionLifecycle(t *testing.T) {
	db := newTestDB(t)

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}
	if err := tx.Commit().Error; err != nil {
		t.Fatalf("failed to commit transaction: %v", err)
	}

	tx = db.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin transaction: %v", tx.Error)
	}
	if err := tx.Rollback().Error; err != nil {
		t.Fatalf("failed to roll back transaction: %v", err)
	}
}

func uintPtr(v uint) *uint { return &v }
