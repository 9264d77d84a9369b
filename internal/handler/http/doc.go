// Package http implements the HTTP transport of the blueprint server.
// It builds the chi router, installs the tracing and access-log middlewares,
// serves the version and metrics endpoints, and lets lifecycle listeners
// (the blueprint hook) bind their routes before the router starts serving.
package http
