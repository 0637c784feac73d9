// Package snapshot holds the shared result of background discovery scans.
//
// The render loop and the scanner are the only two goroutines in the
// program, and the Cell is the only state they share. Both sides access it
// with try-locks: a reader that loses the race keeps rendering the snapshot
// it already has, and a writer that loses the race publishes on its next
// cycle instead. Neither side ever blocks on the other.
package snapshot

import (
	"sync"

	"github.com/ethanuppal/kegtui/internal/keg"
)

// Snapshot is one complete, self-consistent result of a discovery scan.
// Published wholesale; never mutated after publication.
type Snapshot struct {
	Kegs     []keg.Keg
	Engines  []keg.Engine
	Wrappers []keg.Wrapper
}

// Empty returns a snapshot with no discovered entries, used until the first
// scan completes.
func Empty() *Snapshot {
	return &Snapshot{}
}

// Cell is the single-writer, many-reader holder for the latest snapshot.
type Cell struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewCell creates a cell holding an empty snapshot.
func NewCell() *Cell {
	return &Cell{current: Empty()}
}

// TryLoad returns the latest snapshot, or (nil, false) if the writer holds
// the lock right now. Callers treat false as "render with what you had".
func (c *Cell) TryLoad() (*Snapshot, bool) {
	if !c.mu.TryRLock() {
		return nil, false
	}
	defer c.mu.RUnlock()
	return c.current, true
}

// TryStore publishes a new snapshot unless a reader holds the lock, in
// which case it reports false and the caller skips this cycle.
func (c *Cell) TryStore(s *Snapshot) bool {
	if !c.mu.TryLock() {
		return false
	}
	c.current = s
	c.mu.Unlock()
	return true
}

// Load blocks for the lock. Only used on paths where blocking is fine, such
// as handing a coherent snapshot to an external action.
func (c *Cell) Load() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}
