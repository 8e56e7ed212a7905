// Package segment accumulates per-frame motion decisions into closed
// [start,end] frame-index intervals and consolidates intervals separated by
// short gaps.
package segment

// Segment is a closed frame-index interval during which motion was
// continuously detected on sampled frames. Start and End are source-stream
// frame indices, not sampled positions.
type Segment struct {
	Start int
	End   int
}

// Tracker folds the sampled-frame motion stream into closed segments.
// It has two states: idle (no open segment) and active (an open start
// recorded). Skipped frames are never observed and cannot open or close a
// segment, so boundary resolution is bounded by the caller's frame skip.
type Tracker struct {
	segments    []Segment
	openStart   int
	active      bool
	lastSampled int
}

// NewTracker creates an idle Tracker.
func NewTracker() *Tracker {
	return &Tracker{openStart: -1, lastSampled: -1}
}

// Observe records the motion decision for the sampled frame at index.
// Indices must be observed in strictly increasing order.
func (t *Tracker) Observe(index int, detected bool) {
	switch {
	case detected && !t.active:
		t.active = true
		t.openStart = index
	case !detected && t.active:
		// Motion ended somewhere between the previous sampled frame and
		// this one; close at the previous sampled index.
		t.segments = append(t.segments, Segment{Start: t.openStart, End: t.lastSampled})
		t.active = false
		t.openStart = -1
	}
	t.lastSampled = index
}

// Finish closes any open segment at the last observed index. It must be
// called exactly once when the stream ends (or is cut short by a read
// failure, which is treated the same way).
func (t *Tracker) Finish() {
	if t.active {
		t.segments = append(t.segments, Segment{Start: t.openStart, End: t.lastSampled})
		t.active = false
		t.openStart = -1
	}
}

// Segments returns the closed segments in observation order, which is
// ascending by start by construction.
func (t *Tracker) Segments() []Segment {
	return t.segments
}
