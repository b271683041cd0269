package client

import "errors"

var (
	// ErrUnknownOutputFormat is returned by [App.Run] for a format it cannot
	// render.
	ErrUnknownOutputFormat = errors.New("unknown output format")

	errNoBrowser = errors.New("interactive browser is not configured")
)
