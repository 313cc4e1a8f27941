package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"weekly-checklist/internal/checklist/repository"
	"weekly-checklist/pkg/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens the SQLite database at path in WAL mode and runs migrations.
func Open(path string, l log.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := runMigrations(db, l); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return db, nil
}

func runMigrations(db *sql.DB, l log.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{l: l})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// gooseLogger routes migration output through log.Logger.
type gooseLogger struct {
	l log.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Infof(context.Background(), "checklist/repository/sqlite.migrate: %s", strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level and returns.
func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.l.Errorf(context.Background(), "checklist/repository/sqlite.migrate: %s", strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// New creates a Repository that keeps one row per week in db.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("checklist/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("checklist/repository/sqlite.%s", method)
}
