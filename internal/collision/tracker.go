// Package collision tracks how distinct keys spread over hash buckets.
package collision

// Tracker records the distinct keys seen per bucket and detects collisions,
// meaning two different keys that map to the same bucket.
type Tracker struct {
	keys       map[string]uint64 // key bytes → bucket
	occupied   map[uint64]int    // bucket → number of distinct keys
	collisions int
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		keys:     make(map[string]uint64),
		occupied: make(map[uint64]int),
	}
}

// Track records that key hashed to bucket and reports whether the bucket
// already held a different key.
//
// Tracking the same key again is a no-op that returns false.
func (t *Tracker) Track(key []byte, bucket uint64) bool {
	if _, seen := t.keys[string(key)]; seen {
		return false
	}

	t.keys[string(key)] = bucket
	t.occupied[bucket]++
	if t.occupied[bucket] > 1 {
		t.collisions++
		return true
	}

	return false
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.collisions > 0
}

// Collisions returns the number of keys that landed in an occupied bucket.
func (t *Tracker) Collisions() int {
	return t.collisions
}

// Count returns the number of distinct keys tracked.
func (t *Tracker) Count() int {
	return len(t.keys)
}

// Occupied returns the number of distinct buckets in use.
func (t *Tracker) Occupied() int {
	return len(t.occupied)
}

// MaxLoad returns the largest number of distinct keys sharing one bucket.
func (t *Tracker) MaxLoad() int {
	maxLoad := 0
	for _, n := range t.occupied {
		maxLoad = max(maxLoad, n)
	}

	return maxLoad
}

// Reset clears all tracked keys and collision state.
func (t *Tracker) Reset() {
	clear(t.keys)
	clear(t.occupied)
	t.collisions = 0
}
