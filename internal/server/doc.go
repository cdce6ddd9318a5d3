// Package server runs the HTTP server of the sections API.
//
// It owns the server lifecycle: startup, waiting for SIGINT, SIGTERM or
// SIGQUIT, and graceful shutdown bounded by the configured timeout.
package server
