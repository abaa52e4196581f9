// Package journal implements the bounded admin activity log.
//
// Every mutating operation (session lifecycle, device sync, catalog refresh,
// login) records an entry, and device syncs fold the handheld's local
// activity log into the same journal. Capacity is fixed at 500 entries;
// the oldest entries are silently evicted. The journal is process-scoped
// and deliberately non-durable across restarts.
package journal
