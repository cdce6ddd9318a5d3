package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
	"github.com/MKhiriev/katla-sections/migrations"
)

// Dialect names the SQL database behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps *sql.DB with the dialect specific pieces the repositories need:
// a squirrel statement builder with the right placeholder format, an error
// classifier and the retry policy for transient failures.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	retryAttempts      uint64
	retryDelay         time.Duration
	logger             *logger.Logger
}

// NewDB opens a connection to the database named by cfg.DSN. The driver is
// chosen from the DSN scheme: "postgres://" and "postgresql://" use pgx,
// "sqlite://" and "file:" use go-sqlite3.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := parseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, cfg, log)
	default:
		return NewConnectSQLite(ctx, dsn, cfg, log)
	}
}

func newDB(conn *sql.DB, dialect Dialect, cfg config.DB, log *logger.Logger) *DB {
	db := &DB{
		DB:            conn,
		dialect:       dialect,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		logger:        log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the database dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func parseDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, sqliteDSN(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// sqliteDSN turns a bare path into a go-sqlite3 URI with foreign keys on.
// Paths that already carry query parameters are used as given.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return "file:" + path
	}

	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}
