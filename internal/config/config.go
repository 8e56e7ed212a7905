// Package config provides configuration types and defaults for motioncut.
package config

import (
	"fmt"

	"github.com/mkarlsen/motioncut/internal/roi"
)

// Default constants
const (
	// DefaultThreshold is the pixel intensity difference treated as change.
	DefaultThreshold int = 25

	// DefaultMinContourArea is the minimum contour area (px^2) that counts as motion.
	DefaultMinContourArea int = 500

	// DefaultSensitivity is the fraction of ROI pixels that must change.
	DefaultSensitivity float64 = 0.01

	// DefaultFrameSkip scores every Nth source frame (1 = every frame).
	DefaultFrameSkip int = 2

	// DefaultPaddingBeforeSecs is the lead-in added before each exported clip.
	DefaultPaddingBeforeSecs float64 = 2.0

	// DefaultPaddingAfterSecs is the tail added after each exported clip.
	DefaultPaddingAfterSecs float64 = 2.0

	// DefaultMergeGapSecs merges motion segments separated by at most this gap.
	DefaultMergeGapSecs float64 = 10.0

	// DefaultMinClipDurationSecs is the advisory minimum exported clip length.
	DefaultMinClipDurationSecs float64 = 2.0

	// DefaultOutputCodec is the FOURCC used for exported clips.
	DefaultOutputCodec string = "mp4v"

	// DefaultOutputExt is the container extension for exported clips.
	DefaultOutputExt string = ".mp4"

	// MaxThreshold is the maximum valid intensity threshold.
	MaxThreshold int = 255
)

// Config holds all configuration for motion scanning and clip export.
// It is constructed once, validated, and passed by value into the pipeline;
// the pipeline itself never re-validates or mutates it.
type Config struct {
	// Input/output paths
	InputDir  string
	OutputDir string
	LogDir    string

	// Region of interest, in source pixel coordinates. An empty rectangle
	// means "no region": analysis yields no motion and no clips.
	ROI roi.Rect

	// Motion scoring
	Threshold      int     // pixel difference threshold, 0-255
	MinContourArea int     // minimum contour area in px^2
	Sensitivity    float64 // changed fraction of ROI required, 0.0-1.0

	// Sampling
	FrameSkip int // score every Nth source frame, >= 1

	// Clip export
	PaddingBeforeSecs   float64
	PaddingAfterSecs    float64
	MergeGapSecs        float64
	MinClipDurationSecs float64
	OutputCodec         string
	OutputExt           string
}

// NewConfig creates a new Config with default values.
func NewConfig(inputDir, outputDir, logDir string) Config {
	return Config{
		InputDir:            inputDir,
		OutputDir:           outputDir,
		LogDir:              logDir,
		Threshold:           DefaultThreshold,
		MinContourArea:      DefaultMinContourArea,
		Sensitivity:         DefaultSensitivity,
		FrameSkip:           DefaultFrameSkip,
		PaddingBeforeSecs:   DefaultPaddingBeforeSecs,
		PaddingAfterSecs:    DefaultPaddingAfterSecs,
		MergeGapSecs:        DefaultMergeGapSecs,
		MinClipDurationSecs: DefaultMinClipDurationSecs,
		OutputCodec:         DefaultOutputCodec,
		OutputExt:           DefaultOutputExt,
	}
}

// Validate checks the configuration for errors. The pipeline assumes a
// validated Config; callers must run this before constructing the pipeline.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > MaxThreshold {
		return fmt.Errorf("%w: must be 0-%d, got %d", ErrInvalidThreshold, MaxThreshold, c.Threshold)
	}

	if c.MinContourArea <= 0 {
		return fmt.Errorf("%w: must be > 0, got %d", ErrInvalidContourArea, c.MinContourArea)
	}

	if c.Sensitivity < 0 || c.Sensitivity > 1 {
		return fmt.Errorf("%w: must be 0.0-1.0, got %g", ErrInvalidSensitivity, c.Sensitivity)
	}

	if c.FrameSkip < 1 {
		return fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidFrameSkip, c.FrameSkip)
	}

	if c.PaddingBeforeSecs < 0 || c.PaddingAfterSecs < 0 {
		return fmt.Errorf("%w: must be >= 0, got before=%g after=%g",
			ErrInvalidPadding, c.PaddingBeforeSecs, c.PaddingAfterSecs)
	}

	if c.MergeGapSecs < 0 {
		return fmt.Errorf("%w: must be >= 0, got %g", ErrInvalidMergeGap, c.MergeGapSecs)
	}

	if c.MinClipDurationSecs < 0 {
		return fmt.Errorf("%w: must be >= 0, got %g", ErrInvalidClipDuration, c.MinClipDurationSecs)
	}

	return nil
}
