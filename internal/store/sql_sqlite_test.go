package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnect_UnknownDriver(t *testing.T) {
	db, err := NewConnect(context.Background(), config.DB{Driver: "oracle", DSN: "x"}, logger.Nop())

	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.db")

	db, err := NewConnect(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, db.Driver())
}

func TestSQLite_ListUsersBeforeAndAfterMigrate(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{Driver: config.DriverSQLite, DSN: memoryDSN}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	repo := NewStorages(db, logger.Nop()).UserRepository

	_, err = repo.ListUsers(ctx)
	require.ErrorIs(t, err, ErrNotMigrated)

	require.NoError(t, db.Migrate())

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
	for i := 1; i < len(users); i++ {
		assert.Less(t, users[i-1].ID, users[i].ID)
	}
	assert.Equal(t, "Ann Lee", users[0].Name)
}
