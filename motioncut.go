// Package motioncut provides a Go library for motion detection and clip
// extraction from video files.
//
// Motioncut scans a video for visually significant change inside a region of
// interest, merges nearby motion bursts, and exports each merged burst as a
// padded sub-clip of the source.
//
// Basic usage:
//
//	scanner, err := motioncut.New(
//	    motioncut.WithRegion(100, 100, 500, 400),
//	    motioncut.WithSensitivity(0.02),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := scanner.ScanFile(ctx, "backyard.mp4", "clips/", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Exported %d clip(s)\n", result.ClipsExported)
package motioncut

import (
	"context"
	"fmt"

	"github.com/mkarlsen/motioncut/internal/config"
	"github.com/mkarlsen/motioncut/internal/discovery"
	"github.com/mkarlsen/motioncut/internal/processing"
	"github.com/mkarlsen/motioncut/internal/reporter"
	"github.com/mkarlsen/motioncut/internal/roi"
)

// Scanner is the main entry point for motion scanning.
type Scanner struct {
	config config.Config
}

// Result contains the result of scanning a single video file.
type Result struct {
	InputFile     string
	RawSegments   int
	MergedClips   int
	ClipsExported int
	ClipPaths     []string
}

// BatchResult contains the result of scanning a directory.
type BatchResult struct {
	Results        []Result
	ProcessedCount int
	TotalFiles     int
	TotalClips     int
}

// Option configures the scanner.
type Option func(*config.Config)

// New creates a new Scanner with the given options.
func New(opts ...Option) (*Scanner, error) {
	cfg := config.NewConfig(".", ".", ".")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Scanner{config: cfg}, nil
}

// WithRegion sets the region of interest in source pixel coordinates.
// Any two opposite corners may be given; the rectangle is normalized.
func WithRegion(x1, y1, x2, y2 int) Option {
	return func(c *config.Config) {
		c.ROI = roi.New(x1, y1, x2, y2)
	}
}

// WithThreshold sets the pixel intensity difference treated as change (0-255).
func WithThreshold(threshold int) Option {
	return func(c *config.Config) {
		c.Threshold = threshold
	}
}

// WithMinContourArea sets the minimum contour area in px^2 that counts as motion.
func WithMinContourArea(area int) Option {
	return func(c *config.Config) {
		c.MinContourArea = area
	}
}

// WithSensitivity sets the fraction of region pixels that must change (0.0-1.0).
func WithSensitivity(sensitivity float64) Option {
	return func(c *config.Config) {
		c.Sensitivity = sensitivity
	}
}

// WithFrameSkip scores every Nth source frame (1 = every frame).
func WithFrameSkip(n int) Option {
	return func(c *config.Config) {
		c.FrameSkip = n
	}
}

// WithPadding sets the lead-in and tail, in seconds, added to each clip.
func WithPadding(beforeSecs, afterSecs float64) Option {
	return func(c *config.Config) {
		c.PaddingBeforeSecs = beforeSecs
		c.PaddingAfterSecs = afterSecs
	}
}

// WithMergeGap merges motion segments separated by at most gapSecs.
func WithMergeGap(gapSecs float64) Option {
	return func(c *config.Config) {
		c.MergeGapSecs = gapSecs
	}
}

// WithMinClipDuration sets the advisory minimum clip length in seconds.
func WithMinClipDuration(secs float64) Option {
	return func(c *config.Config) {
		c.MinClipDurationSecs = secs
	}
}

// WithOutputFormat sets the FOURCC codec and container extension for clips.
func WithOutputFormat(codec, ext string) Option {
	return func(c *config.Config) {
		c.OutputCodec = codec
		c.OutputExt = ext
	}
}

// ScanFile scans a single video file and exports its motion clips into
// outputDir. The handler, if non-nil, receives progress events.
func (s *Scanner) ScanFile(ctx context.Context, input, outputDir string, handler EventHandler) (*Result, error) {
	cfg := s.config
	cfg.OutputDir = outputDir

	results, err := processing.ScanVideos(ctx, cfg, []string{input}, newEventReporter(handler), nil)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no files were scanned")
	}

	r := toResult(results[0])
	return &r, nil
}

// ScanDirectory scans every video file in inputDir and exports motion clips
// into outputDir. Files are processed in alphabetical order; a failure on one
// file does not stop the batch.
func (s *Scanner) ScanDirectory(ctx context.Context, inputDir, outputDir string, handler EventHandler) (*BatchResult, error) {
	files, err := discovery.FindVideoFiles(inputDir)
	if err != nil {
		return nil, err
	}

	cfg := s.config
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir

	results, err := processing.ScanVideos(ctx, cfg, files, newEventReporter(handler), nil)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{
		TotalFiles:     len(files),
		ProcessedCount: len(results),
	}
	for _, r := range results {
		batch.Results = append(batch.Results, toResult(r))
		batch.TotalClips += r.ClipsExported
	}

	return batch, nil
}

// FindVideos finds video files in a directory.
func FindVideos(dir string) ([]string, error) {
	return discovery.FindVideoFiles(dir)
}

func toResult(r processing.ScanResult) Result {
	return Result{
		InputFile:     r.Filename,
		RawSegments:   r.RawSegments,
		MergedClips:   r.MergedClips,
		ClipsExported: r.ClipsExported,
		ClipPaths:     r.ClipPaths,
	}
}

// eventReporter adapts EventHandler to the Reporter interface.
type eventReporter struct {
	handler EventHandler
}

func newEventReporter(handler EventHandler) reporter.Reporter {
	if handler == nil {
		return reporter.NullReporter{}
	}
	return &eventReporter{handler: handler}
}

func (r *eventReporter) ScanStarted(s reporter.ScanSummary) {
	_ = r.handler(ScanStartedEvent{
		BaseEvent:  BaseEvent{EventType: EventTypeScanStarted, Time: NewTimestamp()},
		InputFile:  s.InputFile,
		Resolution: s.Resolution,
		Duration:   s.Duration,
		FPS:        s.FPS,
		FrameCount: s.FrameCount,
	})
}

func (r *eventReporter) AnalysisStarted(int) {}

func (r *eventReporter) AnalysisProgress(p reporter.AnalysisSnapshot) {
	_ = r.handler(AnalysisProgressEvent{
		BaseEvent:    BaseEvent{EventType: EventTypeAnalysisProgress, Time: NewTimestamp()},
		CurrentFrame: p.CurrentFrame,
		TotalFrames:  p.TotalFrames,
		Percent:      p.Percent,
	})
}

func (r *eventReporter) AnalysisComplete(reporter.AnalysisOutcome) {}

func (r *eventReporter) ClipExported(s reporter.ClipSummary) {
	_ = r.handler(ClipExportedEvent{
		BaseEvent:     BaseEvent{EventType: EventTypeClipExported, Time: NewTimestamp()},
		OutputFile:    s.OutputFile,
		ClipIndex:     s.ClipIndex,
		ClipCount:     s.ClipCount,
		FramesWritten: s.FramesWritten,
		StartSecs:     s.StartSecs,
		EndSecs:       s.EndSecs,
	})
}

func (r *eventReporter) VideoComplete(s reporter.VideoOutcome) {
	_ = r.handler(VideoCompleteEvent{
		BaseEvent:     BaseEvent{EventType: EventTypeVideoComplete, Time: NewTimestamp()},
		InputFile:     s.InputFile,
		ClipsExported: s.ClipsExported,
	})
}

func (r *eventReporter) Warning(message string) {
	_ = r.handler(WarningEvent{
		BaseEvent: BaseEvent{EventType: EventTypeWarning, Time: NewTimestamp()},
		Message:   message,
	})
}

func (r *eventReporter) Error(e reporter.ReporterError) {
	_ = r.handler(ErrorEvent{
		BaseEvent:  BaseEvent{EventType: EventTypeError, Time: NewTimestamp()},
		Title:      e.Title,
		Message:    e.Message,
		Context:    e.Context,
		Suggestion: e.Suggestion,
	})
}

func (r *eventReporter) OperationComplete(string)                  {}
func (r *eventReporter) BatchStarted(reporter.BatchStartInfo)      {}
func (r *eventReporter) FileProgress(reporter.FileProgressContext) {}

func (r *eventReporter) BatchComplete(s reporter.BatchSummary) {
	_ = r.handler(BatchCompleteEvent{
		BaseEvent:      BaseEvent{EventType: EventTypeBatchComplete, Time: NewTimestamp()},
		ProcessedCount: s.ProcessedCount,
		TotalFiles:     s.TotalFiles,
		TotalClips:     s.TotalClips,
	})
}
