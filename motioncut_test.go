package motioncut

import (
	"testing"
)

func TestNewDefaults(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := s.config
	if cfg.Threshold != 25 {
		t.Errorf("Threshold = %d, want 25", cfg.Threshold)
	}
	if cfg.FrameSkip != 2 {
		t.Errorf("FrameSkip = %d, want 2", cfg.FrameSkip)
	}
	if cfg.MergeGapSecs != 10.0 {
		t.Errorf("MergeGapSecs = %g, want 10.0", cfg.MergeGapSecs)
	}
	if !cfg.ROI.Empty() {
		t.Errorf("default ROI should be empty, got %+v", cfg.ROI)
	}
}

func TestNewOptions(t *testing.T) {
	s, err := New(
		WithRegion(500, 400, 100, 100),
		WithThreshold(40),
		WithMinContourArea(800),
		WithSensitivity(0.05),
		WithFrameSkip(3),
		WithPadding(1.0, 3.0),
		WithMergeGap(5.0),
		WithOutputFormat("avc1", ".mp4"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cfg := s.config
	// Corners given in reverse order are normalized.
	if cfg.ROI.X1 != 100 || cfg.ROI.Y1 != 100 || cfg.ROI.X2 != 500 || cfg.ROI.Y2 != 400 {
		t.Errorf("ROI = %+v, want (100,100)-(500,400)", cfg.ROI)
	}
	if cfg.Threshold != 40 {
		t.Errorf("Threshold = %d, want 40", cfg.Threshold)
	}
	if cfg.MinContourArea != 800 {
		t.Errorf("MinContourArea = %d, want 800", cfg.MinContourArea)
	}
	if cfg.Sensitivity != 0.05 {
		t.Errorf("Sensitivity = %g, want 0.05", cfg.Sensitivity)
	}
	if cfg.FrameSkip != 3 {
		t.Errorf("FrameSkip = %d, want 3", cfg.FrameSkip)
	}
	if cfg.PaddingBeforeSecs != 1.0 || cfg.PaddingAfterSecs != 3.0 {
		t.Errorf("Padding = %g/%g, want 1.0/3.0", cfg.PaddingBeforeSecs, cfg.PaddingAfterSecs)
	}
	if cfg.MergeGapSecs != 5.0 {
		t.Errorf("MergeGapSecs = %g, want 5.0", cfg.MergeGapSecs)
	}
	if cfg.OutputCodec != "avc1" {
		t.Errorf("OutputCodec = %q, want avc1", cfg.OutputCodec)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"threshold over max", []Option{WithThreshold(300)}},
		{"negative threshold", []Option{WithThreshold(-1)}},
		{"zero contour area", []Option{WithMinContourArea(0)}},
		{"sensitivity over one", []Option{WithSensitivity(1.5)}},
		{"zero frame skip", []Option{WithFrameSkip(0)}},
		{"negative padding", []Option{WithPadding(-1, 0)}},
		{"negative merge gap", []Option{WithMergeGap(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts...); err == nil {
				t.Errorf("New() with %s: expected error, got nil", tt.name)
			}
		})
	}
}
