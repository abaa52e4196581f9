package journal

import (
	"sync"
	"time"
)

// Capacity is the maximum number of entries the journal retains.
const Capacity = 500

// Entry is one line of the shared admin activity journal.
//
// Timestamp is a string on purpose: entries imported from handheld devices
// carry the device's own date/time strings, which are kept verbatim.
type Entry struct {
	Category  string `json:"category"`
	Message   string `json:"message"`
	Actor     string `json:"actor"`
	Timestamp string `json:"timestamp"`
}

// Journal is a bounded, newest-first activity log shared by all mutating
// operations. Appends are serialized; reads return a snapshot copy.
type Journal struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry // newest first
}

// New creates a journal with the default capacity.
func New() *Journal {
	return WithCapacity(Capacity)
}

// WithCapacity creates a journal retaining at most n entries.
func WithCapacity(n int) *Journal {
	if n <= 0 {
		n = Capacity
	}
	return &Journal{capacity: n}
}

// Record appends a server-side entry stamped with the current time.
// An empty actor is attributed to "system".
func (j *Journal) Record(category, message, actor string) {
	if actor == "" {
		actor = "system"
	}
	j.Append(Entry{
		Category:  category,
		Message:   message,
		Actor:     actor,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Append inserts a pre-built entry at the front, evicting the oldest entry
// when the journal is full.
func (j *Journal) Append(e Entry) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.entries) < j.capacity {
		j.entries = append(j.entries, Entry{})
	}
	copy(j.entries[1:], j.entries)
	j.entries[0] = e
}

// Snapshot returns a copy of the journal, newest first.
func (j *Journal) Snapshot() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the current number of entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
