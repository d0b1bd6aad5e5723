// Package migrations applies the versioned SQL files under sql/ with goose.
// Applied versions are recorded in schema_migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"adverts_backend/internals/configs"
)

//go:embed sql/*.sql
var files embed.FS

const (
	dir       = "sql"
	tableName = "schema_migrations"
)

// zapLogger adapts zap to goose.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Printf(format string, v ...interface{}) {
	l.s.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l zapLogger) Fatalf(format string, v ...interface{}) {
	l.s.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}

func dialect(driver string) (string, error) {
	switch driver {
	case configs.DriverPostgres:
		return "postgres", nil
	case configs.DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("SQL migrations support postgres and sqlite, not %q; use DB_AUTO_MIGRATE=true", driver)
	}
}

func setup(driver string, log *zap.Logger) error {
	d, err := dialect(driver)
	if err != nil {
		return err
	}
	goose.SetBaseFS(files)
	goose.SetTableName(tableName)
	goose.SetLogger(zapLogger{s: log.Named("migrations").Sugar()})
	return goose.SetDialect(d)
}

// Load lists the embedded migrations sorted by version.
func Load() (goose.Migrations, error) {
	goose.SetBaseFS(files)
	return goose.CollectMigrations(dir, 0, goose.MaxVersion)
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) error {
	if err := setup(driver, log); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

// Down rolls back the most recently applied migration.
func Down(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) error {
	if err := setup(driver, log); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, dir)
}

// Version returns the current schema version, 0 when nothing is applied.
func Version(ctx context.Context, db *sql.DB, driver string, log *zap.Logger) (int64, error) {
	if err := setup(driver, log); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}
