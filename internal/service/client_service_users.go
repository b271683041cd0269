// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

type clientUserService struct {
	directory adapter.DirectoryAdapter

	logger *logger.Logger
}

func NewClientUserService(directory adapter.DirectoryAdapter, logger *logger.Logger) ClientUserService {
	return &clientUserService{
		directory: directory,
		logger:    logger,
	}
}

func (s *clientUserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientUserService.List").Msg("error listing directory users")
		return nil, fmt.Errorf("error listing directory users: %w", err)
	}

	return users, nil
}

func (s *clientUserService) Search(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := FilterUsers(users, query)
	s.logger.Debug().
		Str("query", query).
		Int("total", len(users)).
		Int("matched", len(matched)).
		Msg("directory users filtered")

	return matched, nil
}

// FilterUsers keeps the users whose name or e-mail contains query, ignoring
// case and surrounding spaces in query. The result keeps the input order and
// is never nil.
func FilterUsers(users []models.User, query string) []models.User {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.User, 0, len(users))
	for _, user := range users {
		if query == "" ||
			strings.Contains(strings.ToLower(user.Name), query) ||
			strings.Contains(strings.ToLower(user.Email), query) {
			matched = append(matched, user)
		}
	}

	return matched
}
