// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request IDs, request-scoped logging, tracing, CORS,
// rate limiting, body limits and panic recovery, and they own
// the global error handler that shapes every failure response
package middleware
