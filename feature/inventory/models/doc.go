// Package models defines the persisted inventory entities: the session
// header, its frozen baseline lines and the per-device scan readings.
// Baseline lines and readings are owned by their session and removed with
// it; readings additionally carry the originating device so a device's
// contribution can be replaced atomically on sync.
package models
