// Package storage provides the object storage client used for APK
// distribution.
//
// The handheld scanner app is compiled out of band and uploaded to a bucket;
// the distribution feature serves it from there. The Client interface wraps
// the subset of MinIO operations the application needs so that features can
// be tested against the mock in storage/mocks.
package storage
