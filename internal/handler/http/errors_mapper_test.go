package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/app"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{store.ErrNotMigrated, http.StatusServiceUnavailable, app.MsgDirectoryNotMigrated},
		{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgDirectoryUnavailable},
		{fmt.Errorf("%w: x", store.ErrScanningRows), http.StatusInternalServerError, app.MsgInternalServerError},
		{service.ErrInvalidStoredUser, http.StatusInternalServerError, app.MsgInvalidStoredUser},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimedOut},
		{errors.New("unknown"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
