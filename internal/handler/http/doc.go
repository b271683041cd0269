// Package http implements the HTTP transport layer of the fixture directory
// server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression,
// CORS and request timeouts are handled in this package before requests are
// delegated to the service layer.
package http
