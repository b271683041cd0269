package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_user_service_mock.go -package=mock

// ClientUserService defines the client-side contract for reading the remote
// user directory. Every call performs exactly one directory request; nothing
// is cached between calls.
type ClientUserService interface {
	// List returns every directory user in payload order.
	List(ctx context.Context) ([]models.User, error)

	// Search lists the directory and keeps the users whose name or e-mail
	// contains query, ignoring case. Payload order is preserved and an empty
	// query keeps every user.
	Search(ctx context.Context, query string) ([]models.User, error)
}
