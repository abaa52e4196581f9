// Package distribution serves the handheld scanner APK from object
// storage, so devices on the store network can self-update without a
// separate file server.
package distribution
