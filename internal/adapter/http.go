// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

// usersPath is appended to the base address to list users.
const usersPath = "/users"

// DirectoryClient is the HTTP implementation of [DirectoryAdapter].
//
// The base address and the transport handle are fixed at construction; the
// client holds no other state and may be shared by concurrent callers.
type DirectoryClient struct {
	baseURL string
	client  *utils.HTTPClient

	logger *logger.Logger
}

// NewDirectoryClient resolves the directory base address from lookup exactly
// once (see [config.ResolveBaseURL]) and keeps client as the transport for
// every request. It performs no I/O and cannot fail. A nil client is replaced
// by a default [utils.HTTPClient]; a nil logger discards events.
func NewDirectoryClient(client *utils.HTTPClient, lookup config.Lookup, log *logger.Logger) *DirectoryClient {
	if client == nil {
		client = utils.NewHTTPClient(0)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &DirectoryClient{
		baseURL: config.ResolveBaseURL(lookup),
		client:  client,
		logger:  log,
	}
}

// BaseURL returns the base address resolved at construction.
func (c *DirectoryClient) BaseURL() string {
	return c.baseURL
}

// UsersURL returns the list target. Trailing slashes of the base address are
// dropped before "/users" is appended, so "https://h/" and "https://h" both
// target "https://h/users".
func (c *DirectoryClient) UsersURL() string {
	return strings.TrimRight(c.baseURL, "/") + usersPath
}

// ListUsers implements [DirectoryAdapter]. It sends one GET to [UsersURL]
// with no retry. ctx cancellation and the client timeout are enforced by the
// transport.
//
// Errors:
//   - transport failure → [ErrTransport] wrapping the cause;
//   - non-2xx status → [ErrUnexpectedStatus];
//   - body that is not a list of complete users → [ErrDecode].
func (c *DirectoryClient) ListUsers(ctx context.Context) ([]models.User, error) {
	target := c.UsersURL()
	c.logger.Info().Str("url", target).Msg("listing directory users")

	resp, err := c.client.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("%w: list users request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeUsers(resp.Body())
}
