package adapter

import "errors"

var (
	// ErrTransport reports that the HTTP exchange with the directory could
	// not be completed (connection refused, timeout, DNS or TLS failure,
	// truncated response).
	ErrTransport = errors.New("directory transport error")

	// ErrUnexpectedStatus reports a response outside the 2xx range.
	ErrUnexpectedStatus = errors.New("directory unexpected status")

	// ErrDecode reports a response body that is not a well-formed list of
	// users (malformed JSON, non-array payload, missing or mistyped
	// required fields).
	ErrDecode = errors.New("directory decode error")
)
