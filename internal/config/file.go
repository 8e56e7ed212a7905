package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkarlsen/motioncut/internal/roi"
)

// fileConfig mirrors Config with optional fields so a config file only
// overrides what it names.
type fileConfig struct {
	InputDir  *string `yaml:"input_dir"`
	OutputDir *string `yaml:"output_dir"`
	LogDir    *string `yaml:"log_dir"`

	ROI *struct {
		X1 int `yaml:"x1"`
		Y1 int `yaml:"y1"`
		X2 int `yaml:"x2"`
		Y2 int `yaml:"y2"`
	} `yaml:"roi"`

	Threshold      *int     `yaml:"threshold"`
	MinContourArea *int     `yaml:"min_contour_area"`
	Sensitivity    *float64 `yaml:"sensitivity"`
	FrameSkip      *int     `yaml:"frame_skip"`

	PaddingBeforeSecs   *float64 `yaml:"padding_before_secs"`
	PaddingAfterSecs    *float64 `yaml:"padding_after_secs"`
	MergeGapSecs        *float64 `yaml:"merge_gap_secs"`
	MinClipDurationSecs *float64 `yaml:"min_clip_duration_secs"`
	OutputCodec         *string  `yaml:"output_codec"`
	OutputExt           *string  `yaml:"output_ext"`
}

// LoadFile overlays YAML settings from path onto c. Settings absent from the
// file keep their current values. The result is not validated here; callers
// run Validate once all sources are applied.
func LoadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.InputDir != nil {
		c.InputDir = *fc.InputDir
	}
	if fc.OutputDir != nil {
		c.OutputDir = *fc.OutputDir
	}
	if fc.LogDir != nil {
		c.LogDir = *fc.LogDir
	}
	if fc.ROI != nil {
		c.ROI = roi.New(fc.ROI.X1, fc.ROI.Y1, fc.ROI.X2, fc.ROI.Y2)
	}
	if fc.Threshold != nil {
		c.Threshold = *fc.Threshold
	}
	if fc.MinContourArea != nil {
		c.MinContourArea = *fc.MinContourArea
	}
	if fc.Sensitivity != nil {
		c.Sensitivity = *fc.Sensitivity
	}
	if fc.FrameSkip != nil {
		c.FrameSkip = *fc.FrameSkip
	}
	if fc.PaddingBeforeSecs != nil {
		c.PaddingBeforeSecs = *fc.PaddingBeforeSecs
	}
	if fc.PaddingAfterSecs != nil {
		c.PaddingAfterSecs = *fc.PaddingAfterSecs
	}
	if fc.MergeGapSecs != nil {
		c.MergeGapSecs = *fc.MergeGapSecs
	}
	if fc.MinClipDurationSecs != nil {
		c.MinClipDurationSecs = *fc.MinClipDurationSecs
	}
	if fc.OutputCodec != nil {
		c.OutputCodec = *fc.OutputCodec
	}
	if fc.OutputExt != nil {
		c.OutputExt = *fc.OutputExt
	}

	return nil
}
