// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fixture directory server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON error bodies. The directory client only reports the
// status of such responses, so wording is free to change.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDirectoryNotMigrated is returned when the users table does not
	// exist yet.
	MsgDirectoryNotMigrated = "directory storage is not migrated"

	// MsgDirectoryUnavailable is returned when the database cannot be
	// reached.
	MsgDirectoryUnavailable = "directory storage is unavailable"

	// MsgInvalidStoredUser is returned when a stored user row fails
	// validation and cannot be served.
	MsgInvalidStoredUser = "directory contains an invalid user"

	// MsgRequestTimedOut is returned when listing users outlives the request
	// deadline.
	MsgRequestTimedOut = "request timed out"

	// MsgMethodNotAllowed is returned for writes to the read-only directory.
	MsgMethodNotAllowed = "method not allowed"
)
