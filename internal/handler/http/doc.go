// Package http implements the HTTP transport layer of the application.
//
// It exposes the /api/sections resource, route wiring and middleware. Path
// parameters are parsed before dispatch, payloads are decoded and validated
// before they reach the service layer, and service errors are translated to
// status codes in one place (errors_mapper.go). Request tracing, access
// logging, CORS and response compression are handled here as well.
package http
