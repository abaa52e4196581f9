package journal

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournal_NewestFirst(t *testing.T) {
	j := New()
	j.Record("inventory", "first", "")
	j.Record("sync", "second", "dev-1")

	entries := j.Snapshot()
	assert.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, "first", entries[1].Message)
	assert.Equal(t, "system", entries[1].Actor)
}

func TestJournal_EvictsOldest(t *testing.T) {
	j := New()
	for i := 0; i < Capacity+1; i++ {
		j.Record("info", fmt.Sprintf("entry-%d", i), "tester")
	}

	entries := j.Snapshot()
	assert.Len(t, entries, Capacity)
	assert.Equal(t, fmt.Sprintf("entry-%d", Capacity), entries[0].Message)

	// entry-0 has been evicted
	for _, e := range entries {
		assert.NotEqual(t, "entry-0", e.Message)
	}
}

func TestJournal_SnapshotIsCopy(t *testing.T) {
	j := New()
	j.Record("info", "original", "tester")

	snap := j.Snapshot()
	snap[0].Message = "mutated"

	assert.Equal(t, "original", j.Snapshot()[0].Message)
}

func TestJournal_ConcurrentAppends(t *testing.T) {
	j := WithCapacity(100)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			j.Record("info", fmt.Sprintf("entry-%d", n), "tester")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, j.Len())
}
