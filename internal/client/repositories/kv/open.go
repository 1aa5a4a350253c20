package kv

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"

	"github.com/mindcase/mindcase/internal/client/migrations"
	"github.com/mindcase/mindcase/internal/filex"
	"github.com/mindcase/mindcase/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepository, *sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return NewSQLiteRepository(db), db, nil
}

// Open returns the durable store, or a MemoryRepository when the database is
// unusable. It never fails; the closer is always safe to call.
func Open(ctx context.Context, dsn string, logger logging.Logger) (Repository, io.Closer) {
	repo, db, err := OpenSQLite(ctx, dsn)
	if err != nil {
		logger.Warn(ctx, "local store unavailable, falling back to memory", "dsn", dsn, "error", err)
		return NewMemoryRepository(), io.NopCloser(nil)
	}
	logger.Debug(ctx, "local store opened", "dsn", dsn)
	return repo, db
}
