package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindIO, "I/O error"},
		{KindPath, "Path error"},
		{KindVideoOpen, "Video open error"},
		{KindVideoRead, "Video read error"},
		{KindAnalysis, "Analysis error"},
		{KindExport, "Export error"},
		{KindConfig, "Configuration error"},
		{KindNoFilesFound, "No files found"},
		{KindCancelled, "Operation cancelled"},
		{ErrorKind(999), "Unknown error"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCoreErrorMessage(t *testing.T) {
	err := NewVideoOpenError("/videos/cam01.mp4", nil)
	want := "Video open error: could not open video /videos/cam01.mp4"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	underlying := fmt.Errorf("permission denied")
	wrapped := NewIOError("reading directory", underlying)
	if !errors.Is(wrapped, wrapped) {
		t.Error("error should match itself")
	}
	if errors.Unwrap(wrapped) != underlying {
		t.Error("Unwrap should return underlying error")
	}
}

func TestIsKind(t *testing.T) {
	err := NewNoFilesFoundError("/empty")
	if !IsKind(err, KindNoFilesFound) {
		t.Error("expected KindNoFilesFound")
	}
	if IsKind(err, KindIO) {
		t.Error("did not expect KindIO")
	}

	// Wrapped errors should still match by kind.
	wrapped := fmt.Errorf("scan failed: %w", err)
	if !IsNoFilesFound(wrapped) {
		t.Error("expected wrapped error to match KindNoFilesFound")
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsCancelled(NewCancelledError()) {
		t.Error("IsCancelled should match cancellation errors")
	}
	if IsCancelled(NewPathError("bad path")) {
		t.Error("IsCancelled should not match path errors")
	}
	if !IsVideoOpen(NewVideoOpenError("x.mp4", nil)) {
		t.Error("IsVideoOpen should match video open errors")
	}
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	a := NewAnalysisError("scoring failed", nil)
	b := NewAnalysisError("different message", errors.New("cause"))
	if !errors.Is(a, b) {
		t.Error("two analysis errors should match by kind")
	}

	c := NewExportError("writer closed", nil)
	if errors.Is(a, c) {
		t.Error("analysis error should not match export error")
	}
}
