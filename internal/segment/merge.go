package segment

import "sort"

// Merge collapses segments whose gap is at most gapSeconds at the given
// frame rate. The result is sorted ascending by start, pairwise disjoint,
// and minimal: no two adjacent output segments could be merged under the
// same threshold, so re-applying Merge to its own output is a no-op.
// Empty input yields empty output.
func Merge(segments []Segment, fps, gapSeconds float64) []Segment {
	if len(segments) == 0 {
		return nil
	}

	gapFrames := int(gapSeconds * fps)

	// The tracker already emits sorted segments, but the operation must be
	// correct on arbitrary input.
	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	merged := []Segment{sorted[0]}
	for _, seg := range sorted[1:] {
		last := &merged[len(merged)-1]
		if seg.Start-last.End <= gapFrames {
			last.End = max(last.End, seg.End)
		} else {
			merged = append(merged, seg)
		}
	}

	return merged
}
