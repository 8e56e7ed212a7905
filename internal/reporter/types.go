// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// ScanSummary describes the current video before analysis.
type ScanSummary struct {
	InputFile  string
	Resolution string
	Duration   string
	FPS        float64
	FrameCount int
	Region     string
}

// AnalysisSnapshot contains analysis progress information. Granularity is
// one emission per sampled frame.
type AnalysisSnapshot struct {
	CurrentFrame int
	TotalFrames  int
	Percent      float32
}

// AnalysisOutcome contains the result of the analysis phase.
type AnalysisOutcome struct {
	RawSegments    int
	MergedSegments int
}

// ClipSummary contains per-exported-clip information.
type ClipSummary struct {
	ClipIndex     int
	ClipCount     int
	OutputFile    string
	FramesWritten int
	StartSecs     float64
	EndSecs       float64
}

// VideoOutcome contains final per-video results.
type VideoOutcome struct {
	InputFile     string
	ClipsExported int
	TotalTime     time.Duration
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}

// BatchStartInfo contains batch start metadata.
type BatchStartInfo struct {
	TotalFiles int
	FileList   []string
	OutputDir  string
}

// FileProgressContext contains current file index within a batch.
type FileProgressContext struct {
	CurrentFile int
	TotalFiles  int
}

// BatchSummary contains batch completion information.
type BatchSummary struct {
	ProcessedCount int
	TotalFiles     int
	TotalClips     int
	TotalDuration  time.Duration
	FileResults    []FileResult
}

// FileResult contains per-file scan results.
type FileResult struct {
	Filename string
	Clips    int
}
