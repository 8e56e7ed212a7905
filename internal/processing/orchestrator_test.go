package processing

import (
	"testing"
	"time"

	"github.com/mkarlsen/motioncut/internal/config"
	"github.com/mkarlsen/motioncut/internal/reporter"
	"github.com/mkarlsen/motioncut/internal/roi"
)

// recordingReporter captures summary events for assertions.
type recordingReporter struct {
	reporter.NullReporter

	warnings      []string
	operations    []string
	batchSummary  *reporter.BatchSummary
	batchSummarys int
}

func (r *recordingReporter) Warning(message string) {
	r.warnings = append(r.warnings, message)
}

func (r *recordingReporter) OperationComplete(message string) {
	r.operations = append(r.operations, message)
}

func (r *recordingReporter) BatchComplete(summary reporter.BatchSummary) {
	r.batchSummary = &summary
	r.batchSummarys++
}

func TestEmitSummaryNoResults(t *testing.T) {
	rep := &recordingReporter{}
	emitSummary(rep, nil, 3)

	if len(rep.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(rep.warnings))
	}
	if rep.batchSummary != nil {
		t.Error("batch summary should not be emitted with no results")
	}
}

func TestEmitSummarySingleFile(t *testing.T) {
	rep := &recordingReporter{}
	emitSummary(rep, []ScanResult{
		{Filename: "cam.mp4", ClipsExported: 2},
	}, 1)

	if len(rep.operations) != 1 {
		t.Fatalf("expected 1 operation complete, got %d", len(rep.operations))
	}
	if rep.batchSummary != nil {
		t.Error("batch summary should not be emitted for a single file")
	}
}

func TestEmitSummaryBatch(t *testing.T) {
	rep := &recordingReporter{}
	emitSummary(rep, []ScanResult{
		{Filename: "a.mp4", ClipsExported: 2, Duration: 3 * time.Second},
		{Filename: "b.mp4", ClipsExported: 0, Duration: time.Second},
		{Filename: "c.mp4", ClipsExported: 1, Duration: 2 * time.Second},
	}, 4)

	if rep.batchSummarys != 1 {
		t.Fatalf("expected 1 batch summary, got %d", rep.batchSummarys)
	}

	s := rep.batchSummary
	if s.ProcessedCount != 3 {
		t.Errorf("ProcessedCount = %d, want 3", s.ProcessedCount)
	}
	if s.TotalFiles != 4 {
		t.Errorf("TotalFiles = %d, want 4", s.TotalFiles)
	}
	if s.TotalClips != 3 {
		t.Errorf("TotalClips = %d, want 3", s.TotalClips)
	}
	if s.TotalDuration != 6*time.Second {
		t.Errorf("TotalDuration = %v, want 6s", s.TotalDuration)
	}
	if len(s.FileResults) != 3 {
		t.Errorf("FileResults = %d entries, want 3", len(s.FileResults))
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		current int
		total   int
		want    float32
	}{
		{0, 100, 0},
		{50, 100, 50},
		{100, 100, 100},
		{10, 0, 0},
		{10, -1, 0},
	}

	for _, tt := range tests {
		if got := percentOf(tt.current, tt.total); got != tt.want {
			t.Errorf("percentOf(%d, %d) = %g, want %g", tt.current, tt.total, got, tt.want)
		}
	}
}

func TestFormatRegion(t *testing.T) {
	cfg := config.NewConfig(".", ".", ".")
	if got := formatRegion(cfg); got != "none" {
		t.Errorf("formatRegion with empty region = %q, want %q", got, "none")
	}

	cfg.ROI = roi.New(100, 100, 500, 400)
	if got := formatRegion(cfg); got != "(100,100)-(500,400)" {
		t.Errorf("formatRegion = %q", got)
	}
}
