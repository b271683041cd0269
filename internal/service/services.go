package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/models"
)

type Services struct {
	DirectoryService DirectoryService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	directoryService := NewDirectoryValidationService().Wrap(
		NewDirectoryService(storages.UserRepository, logger),
	)

	return &Services{
		DirectoryService: directoryService,
		AppInfoService:   appInfoService,
	}, nil
}
