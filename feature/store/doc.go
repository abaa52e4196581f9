// Package store lists the active retail stores a counting session can be
// opened for. Read-only passthrough to the retail source.
package store
