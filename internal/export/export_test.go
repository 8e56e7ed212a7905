package export

import (
	"regexp"
	"testing"
	"time"

	"github.com/mkarlsen/motioncut/internal/segment"
)

func TestPaddedWindow(t *testing.T) {
	tests := []struct {
		name        string
		seg         segment.Segment
		fps         float64
		totalFrames int
		before      float64
		after       float64
		want        Window
	}{
		{
			name: "two second padding at fps 10",
			seg:  segment.Segment{Start: 10, End: 30},
			fps:  10, totalFrames: 100,
			before: 2.0, after: 2.0,
			want: Window{Start: 0, End: 50},
		},
		{
			name: "padding clamped to stream bounds",
			seg:  segment.Segment{Start: 5, End: 95},
			fps:  10, totalFrames: 100,
			before: 2.0, after: 2.0,
			want: Window{Start: 0, End: 99},
		},
		{
			name: "zero padding keeps segment",
			seg:  segment.Segment{Start: 40, End: 60},
			fps:  30, totalFrames: 1000,
			before: 0, after: 0,
			want: Window{Start: 40, End: 60},
		},
		{
			name: "fractional padding frames floored",
			seg:  segment.Segment{Start: 100, End: 200},
			fps:  29.97, totalFrames: 10000,
			before: 1.0, after: 1.0,
			want: Window{Start: 71, End: 229},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaddedWindow(tt.seg, tt.fps, tt.totalFrames, tt.before, tt.after)
			if got != tt.want {
				t.Errorf("PaddedWindow() = %+v, want %+v", got, tt.want)
			}
			if got.Start < 0 || got.End > tt.totalFrames-1 || got.Start > got.End {
				t.Errorf("window out of bounds: %+v", got)
			}
		})
	}
}

func TestWindowFrameCount(t *testing.T) {
	if got := (Window{Start: 0, End: 50}).FrameCount(); got != 51 {
		t.Errorf("FrameCount() = %d, want 51", got)
	}
	if got := (Window{Start: 10, End: 10}).FrameCount(); got != 1 {
		t.Errorf("FrameCount() = %d, want 1", got)
	}
}

func TestClipName(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := ClipName("/videos/cam01.mp4", Window{Start: 0, End: 50}, 10, ts, ".mp4")
	want := "cam01_motion_0.0s-5.0s_20250314_092653.mp4"
	if got != want {
		t.Errorf("ClipName() = %q, want %q", got, want)
	}
}

func TestClipNameStructure(t *testing.T) {
	// The timestamp component is not reproducible across runs; assert on
	// the surrounding structure only.
	got := ClipName("backyard.mkv", Window{Start: 150, End: 452}, 29.97, time.Now(), ".mp4")
	pattern := regexp.MustCompile(`^backyard_motion_5\.0s-15\.1s_\d{8}_\d{6}\.mp4$`)
	if !pattern.MatchString(got) {
		t.Errorf("ClipName() = %q does not match %v", got, pattern)
	}
}
