package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the fixture directory server.
//
// Implementations block in [Server.RunServer] until a stop signal arrives
// and release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received.
	RunServer()

	// Run serves requests until ctx is done or the listener fails, then
	// shuts down gracefully.
	Run(ctx context.Context) error

	// Ready is closed once the listener accepts connections.
	Ready() <-chan struct{}

	// Addr returns the bound listener address; nil before Ready is closed.
	Addr() net.Addr

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
