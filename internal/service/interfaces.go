package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/directory_service_mock.go -package=mock

// DirectoryService serves the user directory of the fixture server.
type DirectoryService interface {
	// ListUsers returns every stored user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
