// Package model holds the domain types shared by the repository,
// service and handler layers, together with the request payloads
// the HTTP layer binds and validates.
package model
