// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is one entry of the remote user directory.
//
// Values are produced only by decoding a directory response; the client never
// assigns IDs or builds partial users itself.
type User struct {
	// ID is the directory-assigned identifier. It is non-negative and unique
	// within the directory.
	ID int64 `json:"id" db:"id"`

	// Name is the display name as stored by the directory.
	Name string `json:"name" db:"name"`

	// Email is the address held by the directory. Its format is the
	// directory's responsibility and is not checked by the client.
	Email string `json:"email" db:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
