package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHiveSectionNotFound is returned when a query or a write targets a
	// hive section that does not exist.
	ErrHiveSectionNotFound = errors.New("hive section was not found")

	// ErrHiveSectionCodeExists is returned when an INSERT or UPDATE violates
	// the unique index on the section code.
	ErrHiveSectionCodeExists = errors.New("hive section with the same code already exists")

	// ErrStoreHiveNotFound is returned when a write references a store hive
	// that does not exist (foreign key violation).
	ErrStoreHiveNotFound = errors.New("store hive was not found")

	// ErrUnsupportedDSN is returned when the DSN does not name a supported
	// database.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan hive section row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan hive section rows")
)
