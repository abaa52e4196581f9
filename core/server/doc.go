// Package server holds the HTTP server configuration.
//
// It only contains the partial Config consumed by core/config; the actual
// Fiber application is assembled in cmd/start.go where middleware, features
// and the listener are wired together.
package server
