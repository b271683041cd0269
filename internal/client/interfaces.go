// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run performs one client invocation and blocks until it is done.
	Run(ctx context.Context) error
}

// Browser is the interactive presentation of the directory.
type Browser interface {
	// Browse blocks until the user leaves the browser.
	Browse(ctx context.Context, query string) error
}
