package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")
	ErrEmptyName     = errors.New("user name is required")
	ErrInvalidEmail  = errors.New("invalid user email")
)
