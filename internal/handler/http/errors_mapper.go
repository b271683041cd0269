package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/app"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
)

// errorStatuses is checked in order; the first matching target wins.
var errorStatuses = []struct {
	target  error
	status  int
	message string
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimedOut},

	{store.ErrNotMigrated, http.StatusServiceUnavailable, app.MsgDirectoryNotMigrated},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgDirectoryUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},

	{service.ErrInvalidStoredUser, http.StatusInternalServerError, app.MsgInvalidStoredUser},
}

// statusFromError returns the response status and error message for err.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
