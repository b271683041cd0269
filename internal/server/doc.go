// Package server runs the fixture directory server.
//
// It owns the HTTP server lifecycle: listening, signal handling, and graceful
// shutdown.
package server
