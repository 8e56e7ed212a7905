// Package errors provides structured error types for motioncut operations.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindIO represents I/O errors.
	KindIO ErrorKind = iota
	// KindPath represents path-related errors.
	KindPath
	// KindVideoOpen represents failures to open a video source or sink.
	KindVideoOpen
	// KindVideoRead represents failures while decoding frames.
	KindVideoRead
	// KindAnalysis represents motion-analysis failures.
	KindAnalysis
	// KindExport represents clip export failures.
	KindExport
	// KindConfig represents configuration validation errors.
	KindConfig
	// KindNoFilesFound represents no suitable video files found.
	KindNoFilesFound
	// KindCancelled represents user-cancelled operations.
	KindCancelled
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindPath:
		return "Path error"
	case KindVideoOpen:
		return "Video open error"
	case KindVideoRead:
		return "Video read error"
	case KindAnalysis:
		return "Analysis error"
	case KindExport:
		return "Export error"
	case KindConfig:
		return "Configuration error"
	case KindNoFilesFound:
		return "No files found"
	case KindCancelled:
		return "Operation cancelled"
	default:
		return "Unknown error"
	}
}

// CoreError is the main error type for motioncut operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewIOError creates a new I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// NewPathError creates a new path-related error.
func NewPathError(message string) *CoreError {
	return &CoreError{Kind: KindPath, Message: message}
}

// NewVideoOpenError creates an error for an unopenable video source or sink.
func NewVideoOpenError(path string, underlying error) *CoreError {
	return &CoreError{Kind: KindVideoOpen, Message: fmt.Sprintf("could not open video %s", path), Underlying: underlying}
}

// NewVideoReadError creates an error for a failed frame decode.
func NewVideoReadError(path string) *CoreError {
	return &CoreError{Kind: KindVideoRead, Message: fmt.Sprintf("could not read frame from %s", path)}
}

// NewAnalysisError creates a new analysis-related error.
func NewAnalysisError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindAnalysis, Message: message, Underlying: underlying}
}

// NewExportError creates a new clip export error.
func NewExportError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindExport, Message: message, Underlying: underlying}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message}
}

// NewNoFilesFoundError creates an error for when no video files are found.
func NewNoFilesFoundError(dir string) *CoreError {
	return &CoreError{Kind: KindNoFilesFound, Message: fmt.Sprintf("no suitable video files found in %s", dir)}
}

// NewCancelledError creates an error for user-cancelled operations.
func NewCancelledError() *CoreError {
	return &CoreError{Kind: KindCancelled, Message: "operation was cancelled by the user"}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsCancelled checks if the error is a cancellation error.
func IsCancelled(err error) bool {
	return IsKind(err, KindCancelled)
}

// IsNoFilesFound checks if the error is a no-files-found error.
func IsNoFilesFound(err error) bool {
	return IsKind(err, KindNoFilesFound)
}

// IsVideoOpen checks if the error is a video open error.
func IsVideoOpen(err error) bool {
	return IsKind(err, KindVideoOpen)
}
