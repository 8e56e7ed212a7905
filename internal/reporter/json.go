package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// JSONReporter outputs NDJSON events for machine consumers.
type JSONReporter struct {
	writer             io.Writer
	mu                 sync.Mutex
	lastProgressBucket int
	lastProgressTime   time.Time
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{
		writer:             os.Stdout,
		lastProgressBucket: -1,
	}
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		writer:             w,
		lastProgressBucket: -1,
	}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(v interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) ScanStarted(summary ScanSummary) {
	r.write(map[string]interface{}{
		"type":        "scan_started",
		"input_file":  summary.InputFile,
		"resolution":  summary.Resolution,
		"duration":    summary.Duration,
		"fps":         summary.FPS,
		"frame_count": summary.FrameCount,
		"region":      summary.Region,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) AnalysisStarted(totalFrames int) {
	r.mu.Lock()
	r.lastProgressBucket = -1
	r.lastProgressTime = time.Time{}
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":         "analysis_started",
		"total_frames": totalFrames,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) AnalysisProgress(progress AnalysisSnapshot) {
	const progressBucketSize = 1
	const minInterval = 5 * time.Second

	bucket := int(progress.Percent) / progressBucketSize
	now := time.Now()

	r.mu.Lock()
	intervalElapsed := r.lastProgressTime.IsZero() || now.Sub(r.lastProgressTime) >= minInterval
	shouldEmit := bucket > r.lastProgressBucket || intervalElapsed || progress.Percent >= 99.0

	if !shouldEmit {
		r.mu.Unlock()
		return
	}

	if bucket > r.lastProgressBucket {
		r.lastProgressBucket = bucket
	}
	r.lastProgressTime = now
	r.mu.Unlock()

	r.write(map[string]interface{}{
		"type":          "analysis_progress",
		"stage":         "analysis",
		"current_frame": progress.CurrentFrame,
		"total_frames":  progress.TotalFrames,
		"percent":       progress.Percent,
		"timestamp":     r.timestamp(),
	})
}

func (r *JSONReporter) AnalysisComplete(outcome AnalysisOutcome) {
	r.write(map[string]interface{}{
		"type":            "analysis_complete",
		"raw_segments":    outcome.RawSegments,
		"merged_segments": outcome.MergedSegments,
		"timestamp":       r.timestamp(),
	})
}

func (r *JSONReporter) ClipExported(summary ClipSummary) {
	r.write(map[string]interface{}{
		"type":           "clip_exported",
		"clip_index":     summary.ClipIndex,
		"clip_count":     summary.ClipCount,
		"output_file":    summary.OutputFile,
		"frames_written": summary.FramesWritten,
		"start_secs":     summary.StartSecs,
		"end_secs":       summary.EndSecs,
		"timestamp":      r.timestamp(),
	})
}

func (r *JSONReporter) VideoComplete(outcome VideoOutcome) {
	r.write(map[string]interface{}{
		"type":             "video_complete",
		"input_file":       outcome.InputFile,
		"clips_exported":   outcome.ClipsExported,
		"duration_seconds": int64(outcome.TotalTime.Seconds()),
		"timestamp":        r.timestamp(),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]interface{}{
		"type":      "warning",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]interface{}{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"context":    err.Context,
		"suggestion": err.Suggestion,
		"timestamp":  r.timestamp(),
	})
}

func (r *JSONReporter) OperationComplete(message string) {
	r.write(map[string]interface{}{
		"type":      "operation_complete",
		"message":   message,
		"timestamp": r.timestamp(),
	})
}

func (r *JSONReporter) BatchStarted(info BatchStartInfo) {
	r.write(map[string]interface{}{
		"type":        "batch_started",
		"total_files": info.TotalFiles,
		"file_list":   info.FileList,
		"output_dir":  info.OutputDir,
		"timestamp":   r.timestamp(),
	})
}

func (r *JSONReporter) FileProgress(context FileProgressContext) {
	r.write(map[string]interface{}{
		"type":         "file_progress",
		"current_file": context.CurrentFile,
		"total_files":  context.TotalFiles,
		"timestamp":    r.timestamp(),
	})
}

func (r *JSONReporter) BatchComplete(summary BatchSummary) {
	results := make([]map[string]interface{}, len(summary.FileResults))
	for i, fr := range summary.FileResults {
		results[i] = map[string]interface{}{
			"filename": fr.Filename,
			"clips":    fr.Clips,
		}
	}

	r.write(map[string]interface{}{
		"type":                   "batch_complete",
		"processed_count":        summary.ProcessedCount,
		"total_files":            summary.TotalFiles,
		"total_clips":            summary.TotalClips,
		"total_duration_seconds": int64(summary.TotalDuration.Seconds()),
		"file_results":           results,
		"timestamp":              r.timestamp(),
	})
}
