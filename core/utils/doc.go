// Package utils provides permissive scalar coercion helpers.
//
// Handheld devices send near-arbitrary JSON shapes: quantities arrive as
// numbers, numeric strings or not at all, and SKUs arrive as strings or
// numbers depending on the device firmware. These helpers apply the
// coercion-with-default rules the sync processor relies on instead of
// rejecting malformed input.
package utils
