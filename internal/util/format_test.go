package util

import (
	"math"
	"testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3661.9, "01:01:01"},
		{-1, "??:??:??"},
		{math.NaN(), "??:??:??"},
	}

	for _, tt := range tests {
		got := FormatDuration(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0.0s"},
		{1.25, "1.2s"},
		{12.55, "12.6s"},
		{100, "100.0s"},
	}

	for _, tt := range tests {
		got := FormatSeconds(tt.seconds)
		if got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFrameToSeconds(t *testing.T) {
	if got := FrameToSeconds(300, 30); got != 10 {
		t.Errorf("FrameToSeconds(300, 30) = %v, want 10", got)
	}
	if got := FrameToSeconds(10, 0); got != 0 {
		t.Errorf("FrameToSeconds(10, 0) = %v, want 0", got)
	}
}

func TestGetFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/cam01.mp4", "cam01"},
		{"cam01.mp4", "cam01"},
		{"/videos/archive.tar.mp4", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		got := GetFileStem(tt.path)
		if got != tt.want {
			t.Errorf("GetFileStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
