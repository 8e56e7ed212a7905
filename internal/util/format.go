// Package util provides utility functions for formatting and common operations.
package util

import (
	"fmt"
)

// FormatDuration formats seconds as HH:MM:SS.
func FormatDuration(seconds float64) string {
	if seconds < 0 || seconds != seconds { // NaN check
		return "??:??:??"
	}

	totalSecs := int64(seconds)
	hours := totalSecs / 3600
	minutes := (totalSecs % 3600) / 60
	secs := totalSecs % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatSeconds formats a second count with one decimal place, as used in
// exported clip filenames ("12.5s").
func FormatSeconds(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}

// FrameToSeconds converts a frame index to a time offset in seconds.
// Returns 0 when fps is not positive.
func FrameToSeconds(frame int, fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return float64(frame) / fps
}
