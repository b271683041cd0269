// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
)

// errorKind names the directory failure class shown next to an error.
func errorKind(err error) string {
	switch {
	case errors.Is(err, adapter.ErrTransport):
		return "transport"
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, adapter.ErrDecode):
		return "decode"
	default:
		return "unknown"
	}
}

func humanizeDirectoryError(err error) string {
	if err == nil {
		return ""
	}

	switch errorKind(err) {
	case "transport":
		return "Directory is unreachable (transport): " + err.Error()
	case "status":
		return "Directory rejected the request (status): " + err.Error()
	case "decode":
		return "Directory sent a malformed user list (decode): " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
