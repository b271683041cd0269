package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

// DirectoryServiceWrapper defines middleware composition for DirectoryService.
// Implementations wrap an existing DirectoryService to add behavior such as
// validating.
type DirectoryServiceWrapper interface {
	Wrap(DirectoryService) DirectoryService // returns a decorated DirectoryService applying additional behavior
}

// DirectoryValidationService checks every stored user before it is served,
// so the fixture never answers with a record a client would reject.
type DirectoryValidationService struct {
	inner     DirectoryService
	validator validators.Validator
}

func NewDirectoryValidationService() DirectoryServiceWrapper {
	return &DirectoryValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *DirectoryValidationService) Wrap(inner DirectoryService) DirectoryService {
	v.inner = inner
	return v
}

func (v *DirectoryValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := v.inner.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i, user := range users {
		if err = v.validator.Validate(ctx, user); err != nil {
			return nil, fmt.Errorf("%w: user at index %d: %w", ErrInvalidStoredUser, i, err)
		}
	}

	return users, nil
}
