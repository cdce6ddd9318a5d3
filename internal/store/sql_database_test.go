package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/katla-sections/internal/config"
	"github.com/MKhiriev/katla-sections/internal/logger"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		dsn         string
		wantDialect Dialect
		wantDSN     string
		wantErr     bool
	}{
		{dsn: "postgres://u:p@localhost:5432/katla", wantDialect: DialectPostgres, wantDSN: "postgres://u:p@localhost:5432/katla"},
		{dsn: "postgresql://localhost/katla", wantDialect: DialectPostgres, wantDSN: "postgresql://localhost/katla"},
		{dsn: "sqlite://sections.db", wantDialect: DialectSQLite, wantDSN: "file:sections.db?_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "sqlite://:memory:?_foreign_keys=on", wantDialect: DialectSQLite, wantDSN: "file::memory:?_foreign_keys=on"},
		{dsn: "file:test.db?mode=memory", wantDialect: DialectSQLite, wantDSN: "file:test.db?mode=memory"},
		{dsn: "mysql://localhost/katla", wantErr: true},
		{dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			dialect, dsn, err := parseDSN(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestNewDB_UnsupportedDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{DSN: "oracle://db"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Retryable, c.Classify(errors.Join(errors.New("wrapped"), &pgconn.PgError{Code: pgerrcode.CannotConnectNow})))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))

	assert.ErrorIs(t, c.Constraint(&pgconn.PgError{Code: pgerrcode.UniqueViolation}), ErrHiveSectionCodeExists)
	assert.ErrorIs(t, c.Constraint(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), ErrStoreHiveNotFound)
	assert.NoError(t, c.Constraint(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.NoError(t, c.Constraint(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	assert.ErrorIs(t, c.Constraint(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}), ErrHiveSectionCodeExists)
	assert.ErrorIs(t, c.Constraint(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}), ErrStoreHiveNotFound)
	assert.NoError(t, c.Constraint(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}
