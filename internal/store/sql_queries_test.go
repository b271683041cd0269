// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListUsersQuery(t *testing.T) {
	for _, driver := range []string{config.DriverPostgres, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			db := &DB{driver: driver}

			query, args, err := buildListUsersQuery(db.statementBuilder())

			require.NoError(t, err)
			assert.Equal(t, "SELECT id, name, email FROM users ORDER BY id", query)
			assert.Empty(t, args)
		})
	}
}
