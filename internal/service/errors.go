package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidStoredUser     = errors.New("stored user violates the directory contract")
)
