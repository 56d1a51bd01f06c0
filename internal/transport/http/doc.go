// Package http provides the HTTP transport layer: chi handlers, route
// registration and the assembled router. Handlers stay thin and delegate to
// the services layer; every error response follows RFC 7807.
package http
