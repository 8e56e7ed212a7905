package segment

import (
	"reflect"
	"testing"
)

func TestTrackerSingleSegment(t *testing.T) {
	tr := NewTracker()

	// Sampled every 2nd frame: 0, 2, 4, ...
	tr.Observe(0, false)
	tr.Observe(2, true)
	tr.Observe(4, true)
	tr.Observe(6, false)
	tr.Finish()

	want := []Segment{{Start: 2, End: 4}}
	if got := tr.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestTrackerClosesAtStreamEnd(t *testing.T) {
	tr := NewTracker()

	tr.Observe(0, false)
	tr.Observe(3, true)
	tr.Observe(6, true)
	tr.Finish()

	want := []Segment{{Start: 3, End: 6}}
	if got := tr.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestTrackerMultipleSegments(t *testing.T) {
	tr := NewTracker()

	tr.Observe(0, true)
	tr.Observe(5, true)
	tr.Observe(10, false)
	tr.Observe(15, false)
	tr.Observe(20, true)
	tr.Observe(25, false)
	tr.Finish()

	want := []Segment{{Start: 0, End: 5}, {Start: 20, End: 20}}
	if got := tr.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}

	// Monotonically increasing by construction.
	segs := tr.Segments()
	for i := 1; i < len(segs); i++ {
		if segs[i].Start <= segs[i-1].End {
			t.Errorf("segments not increasing: %v", segs)
		}
	}
}

func TestTrackerNoMotionNoSegments(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 100; i += 2 {
		tr.Observe(i, false)
	}
	tr.Finish()

	if got := tr.Segments(); len(got) != 0 {
		t.Errorf("expected no segments, got %v", got)
	}
}

func TestTrackerFinishWhenIdle(t *testing.T) {
	tr := NewTracker()
	tr.Finish()
	if got := tr.Segments(); len(got) != 0 {
		t.Errorf("expected no segments from empty stream, got %v", got)
	}
}

func TestMergeCollapsesShortGap(t *testing.T) {
	// Gap of 4 frames between (10,20) and (25,30); at fps=10 a 2.0s merge
	// gap allows 20 frames, so the pair collapses.
	segs := []Segment{{10, 20}, {25, 30}}
	got := Merge(segs, 10, 2.0)
	want := []Segment{{10, 30}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMergeKeepsWideGap(t *testing.T) {
	// Same segments with a 0.1s gap threshold: gap_frames=1, the 4-frame
	// gap stays.
	segs := []Segment{{10, 20}, {25, 30}}
	got := Merge(segs, 10, 0.1)
	want := []Segment{{10, 20}, {25, 30}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMergeEmptyInput(t *testing.T) {
	if got := Merge(nil, 30, 2.0); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
	if got := Merge([]Segment{}, 30, 2.0); got != nil {
		t.Errorf("Merge(empty) = %v, want nil", got)
	}
}

func TestMergeSortsArbitraryInput(t *testing.T) {
	segs := []Segment{{200, 210}, {10, 20}, {100, 120}}
	got := Merge(segs, 10, 0)
	want := []Segment{{10, 20}, {100, 120}, {200, 210}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMergeOverlappingSegments(t *testing.T) {
	// A contained segment must not shrink the merged end.
	segs := []Segment{{10, 100}, {20, 30}, {40, 120}}
	got := Merge(segs, 10, 0)
	want := []Segment{{10, 120}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
}

func TestMergeProperties(t *testing.T) {
	cases := [][]Segment{
		{{0, 5}, {6, 9}, {30, 40}, {41, 45}, {90, 95}},
		{{10, 20}, {25, 30}, {31, 32}, {100, 200}},
		{{5, 5}, {5, 5}, {6, 6}},
		{{0, 1000}},
	}
	fps := 10.0

	for _, segs := range cases {
		for _, gapSecs := range []float64{0, 0.1, 1.0, 5.0} {
			gapFrames := int(gapSecs * fps)
			got := Merge(segs, fps, gapSecs)

			for i := 1; i < len(got); i++ {
				prev, next := got[i-1], got[i]
				if next.Start <= prev.End {
					t.Errorf("gap %v: output not disjoint/sorted: %v", gapSecs, got)
				}
				if next.Start-prev.End <= gapFrames {
					t.Errorf("gap %v: adjacent output segments still mergeable: %v", gapSecs, got)
				}
			}

			// Idempotence: merging the output again changes nothing.
			again := Merge(got, fps, gapSecs)
			if !reflect.DeepEqual(again, got) {
				t.Errorf("gap %v: Merge not idempotent: %v != %v", gapSecs, again, got)
			}
		}
	}
}
