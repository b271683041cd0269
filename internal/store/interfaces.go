// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer of the fixture directory server.
//
// A [DB] wraps a database/sql connection opened with either the pgx or the
// sqlite3 driver. Repositories build their SQL with squirrel and translate
// driver failures into the sentinel errors declared in errors.go through the
// driver's [ErrorClassificator].
package store

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository reads directory users from the database.
type UserRepository interface {
	// ListUsers returns every stored user ordered by id. An empty table
	// yields an empty, non-nil slice.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ErrorClassificator translates a driver error into one of the store
// sentinels. It returns nil when the error has no special meaning.
type ErrorClassificator interface {
	Classify(err error) error
}
