package service

import (
	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

type ClientServices struct {
	UserService ClientUserService
}

func NewClientServices(directory adapter.DirectoryAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UserService: NewClientUserService(directory, logger),
	}
}
