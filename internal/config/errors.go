// Package config provides configuration types and defaults for motioncut.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidThreshold indicates a pixel threshold outside the 0-255 range.
	ErrInvalidThreshold = errors.New("threshold out of range")

	// ErrInvalidContourArea indicates a non-positive minimum contour area.
	ErrInvalidContourArea = errors.New("minimum contour area out of range")

	// ErrInvalidSensitivity indicates a sensitivity outside the 0.0-1.0 range.
	ErrInvalidSensitivity = errors.New("sensitivity out of range")

	// ErrInvalidFrameSkip indicates a frame skip below 1.
	ErrInvalidFrameSkip = errors.New("frame skip out of range")

	// ErrInvalidPadding indicates a negative clip padding.
	ErrInvalidPadding = errors.New("padding out of range")

	// ErrInvalidMergeGap indicates a negative merge gap.
	ErrInvalidMergeGap = errors.New("merge gap out of range")

	// ErrInvalidClipDuration indicates a negative minimum clip duration.
	ErrInvalidClipDuration = errors.New("minimum clip duration out of range")
)
