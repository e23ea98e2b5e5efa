package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	moderncsqlite "modernc.org/sqlite" // SQLite driver
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage represents SQLite storage implementation
type Storage struct {
	db *sql.DB
}

// New creates a new SQLite storage instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Pragma передаются через DSN: modernc применяет их к каждому новому
	// соединению пула, а не только к первому
	db, err := sql.Open("sqlite", buildDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Настраиваем connection pool
	// SQLite с WAL mode может поддерживать несколько читателей, но только одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	storage := &Storage{db: db}

	// Запускаем миграции
	if err := storage.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

// connPragmas применяются к каждому соединению
var connPragmas = []string{
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// buildDSN добавляет _pragma параметры к пути базы
func buildDSN(dbPath string) string {
	var b strings.Builder
	b.WriteString(dbPath)
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	for _, p := range connPragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// runMigrations выполняет миграции из embedded FS через goose.Provider
func (s *Storage) runMigrations(ctx context.Context) error {
	migrationsFS, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrationsFS)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// Ping checks database availability, used by health checks
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// isForeignKeyViolation reports whether err is a FOREIGN KEY constraint failure
func isForeignKeyViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

// toUnix и fromUnix хранят время как unix nanoseconds в UTC
func toUnix(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromUnix(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
