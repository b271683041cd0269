package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listUsersSQL = "SELECT id, name, email FROM users ORDER BY id"

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			driver:             config.DriverPostgres,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Ann", "ann@x.com").
		AddRow(2, "Bob", "bob@x.com")
	mock.ExpectQuery(listUsersSQL).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 1, Name: "Ann", Email: "ann@x.com"},
		{ID: 2, Name: "Bob", Email: "bob@x.com"},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_EmptyTable(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(listUsersSQL).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_QueryErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), wantErr: ErrNotMigrated},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), wantErr: ErrDatabaseUnavailable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), wantErr: ErrDatabaseUnavailable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), wantErr: ErrExecutingQuery},
		{name: "plain error", err: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery(listUsersSQL).WillReturnError(tt.err)

			users, err := repo.ListUsers(context.Background())

			assert.Nil(t, users)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestListUsers_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).AddRow("not-a-number", "Ann", "ann@x.com")
	mock.ExpectQuery(listUsersSQL).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListUsers_RowsError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Ann", "ann@x.com").
		AddRow(2, "Bob", "bob@x.com").
		RowError(1, errors.New("connection reset"))
	mock.ExpectQuery(listUsersSQL).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, ErrScanningRows)
}
