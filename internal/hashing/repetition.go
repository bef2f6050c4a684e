package hashing

// RepetitionTracker counts how often each position hash occurs along the
// current line of play. Push and Pop mirror applying and undoing a move.
type RepetitionTracker struct {
	history []uint64
	counts  map[uint64]int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{counts: make(map[uint64]int)}
}

// Push records a position and returns how many times it has now occurred.
func (r *RepetitionTracker) Push(hash uint64) int {
	r.history = append(r.history, hash)
	r.counts[hash]++
	return r.counts[hash]
}

// Pop forgets the most recent position. It is a no-op when empty.
func (r *RepetitionTracker) Pop() {
	n := len(r.history)
	if n == 0 {
		return
	}
	hash := r.history[n-1]
	r.history = r.history[:n-1]
	if r.counts[hash] <= 1 {
		delete(r.counts, hash)
	} else {
		r.counts[hash]--
	}
}

// Count returns how many times hash occurs in the tracked line.
func (r *RepetitionTracker) Count(hash uint64) int {
	return r.counts[hash]
}

// Current returns the most recently pushed hash.
func (r *RepetitionTracker) Current() (uint64, bool) {
	if len(r.history) == 0 {
		return 0, false
	}
	return r.history[len(r.history)-1], true
}

// Len returns the number of tracked positions.
func (r *RepetitionTracker) Len() int {
	return len(r.history)
}

// Reset clears the tracker.
func (r *RepetitionTracker) Reset() {
	r.history = r.history[:0]
	r.counts = make(map[uint64]int)
}
