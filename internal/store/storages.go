package store

import "github.com/MKhiriev/go-user-directory/internal/logger"

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
