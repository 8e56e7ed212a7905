package motioncut

import "time"

// EventType identifies the kind of a scan event.
type EventType string

const (
	EventTypeScanStarted      EventType = "scan_started"
	EventTypeAnalysisProgress EventType = "analysis_progress"
	EventTypeClipExported     EventType = "clip_exported"
	EventTypeVideoComplete    EventType = "video_complete"
	EventTypeWarning          EventType = "warning"
	EventTypeError            EventType = "error"
	EventTypeBatchComplete    EventType = "batch_complete"
)

// Event is a scan progress event delivered to an EventHandler.
type Event interface {
	Type() EventType
}

// EventHandler receives scan events. Returning an error does not stop the
// scan; use context cancellation for that.
type EventHandler func(Event) error

// BaseEvent carries fields common to all events.
type BaseEvent struct {
	EventType EventType `json:"type"`
	Time      string    `json:"timestamp"`
}

// Type returns the event type.
func (e BaseEvent) Type() EventType {
	return e.EventType
}

// NewTimestamp returns the current time formatted for event payloads.
func NewTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ScanStartedEvent is emitted once per video before analysis begins.
type ScanStartedEvent struct {
	BaseEvent
	InputFile  string  `json:"input_file"`
	Resolution string  `json:"resolution"`
	Duration   string  `json:"duration"`
	FPS        float64 `json:"fps"`
	FrameCount int     `json:"frame_count"`
}

// AnalysisProgressEvent is emitted as the analysis pass advances.
type AnalysisProgressEvent struct {
	BaseEvent
	CurrentFrame int     `json:"current_frame"`
	TotalFrames  int     `json:"total_frames"`
	Percent      float32 `json:"percent"`
}

// ClipExportedEvent is emitted after each clip is written.
type ClipExportedEvent struct {
	BaseEvent
	OutputFile    string  `json:"output_file"`
	ClipIndex     int     `json:"clip_index"`
	ClipCount     int     `json:"clip_count"`
	FramesWritten int     `json:"frames_written"`
	StartSecs     float64 `json:"start_secs"`
	EndSecs       float64 `json:"end_secs"`
}

// VideoCompleteEvent is emitted when a video finishes both phases.
type VideoCompleteEvent struct {
	BaseEvent
	InputFile     string `json:"input_file"`
	ClipsExported int    `json:"clips_exported"`
}

// WarningEvent is emitted for non-fatal conditions.
type WarningEvent struct {
	BaseEvent
	Message string `json:"message"`
}

// ErrorEvent is emitted when a file or clip fails; the scan continues.
type ErrorEvent struct {
	BaseEvent
	Title      string `json:"title"`
	Message    string `json:"message"`
	Context    string `json:"context"`
	Suggestion string `json:"suggestion"`
}

// BatchCompleteEvent is emitted once when a multi-file scan finishes.
type BatchCompleteEvent struct {
	BaseEvent
	ProcessedCount int `json:"processed_count"`
	TotalFiles     int `json:"total_files"`
	TotalClips     int `json:"total_clips"`
}
