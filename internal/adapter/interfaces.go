// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote user directory.
//
// [DirectoryClient] resolves the directory base address once at construction
// and lists users with a single GET {base}/users, decoding the JSON array
// into [models.User] values. The service layer depends on the
// [DirectoryAdapter] abstraction rather than on the concrete client.
//
// Failures are classified with the sentinel errors defined in errors.go so
// callers can use [errors.Is]: [ErrTransport] when the exchange could not be
// completed, [ErrUnexpectedStatus] for a non-2xx response and [ErrDecode]
// when the body is not a well-formed list of users. The underlying cause stays
// reachable through the same error chain.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_adapter_mock.go -package=mock

// DirectoryAdapter defines read access to the remote user directory.
type DirectoryAdapter interface {
	// ListUsers fetches every user of the directory in payload order.
	// Duplicates are preserved. An empty directory yields an empty,
	// non-nil slice. On error no users are returned.
	ListUsers(ctx context.Context) ([]models.User, error)
}
