package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotMigrated is returned when the users table does not exist yet.
	ErrNotMigrated = errors.New("database schema is not migrated")

	// ErrDatabaseUnavailable is returned when the connection to the database
	// is lost or refused.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrUnknownDriver is returned when a connection is requested for a
	// driver other than pgx or sqlite3.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
