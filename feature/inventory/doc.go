// Package inventory implements the counting session lifecycle, the
// per-device sync protocol and reconciliation reporting.
//
// A session freezes a store's on-hand stock as its baseline, collects scan
// readings from handheld devices, and reconciles the two into a variance
// report with monetary differences and surplus detection. Device sync is
// replace-by-device: each upload swaps the device's entire contribution in
// one transaction, so retries are harmless and partial uploads never mix
// with earlier state.
package inventory
