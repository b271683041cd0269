// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the directory client application runtime.
//
// It reads the remote user directory through the client services and
// presents it as a table, as JSON or in the interactive terminal browser,
// depending on the configured output format.
package client
