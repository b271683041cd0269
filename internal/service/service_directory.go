package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/models"
)

type directoryService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewDirectoryService(userRepository store.UserRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (d *directoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	return d.userRepository.ListUsers(ctx)
}
