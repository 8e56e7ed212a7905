package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarlsen/motioncut/internal/config"
	"github.com/mkarlsen/motioncut/internal/errors"
	"github.com/mkarlsen/motioncut/internal/export"
	"github.com/mkarlsen/motioncut/internal/logging"
	"github.com/mkarlsen/motioncut/internal/reporter"
	"github.com/mkarlsen/motioncut/internal/segment"
	"github.com/mkarlsen/motioncut/internal/util"
	"github.com/mkarlsen/motioncut/internal/video"
)

// ScanResult contains the result of scanning a single video file.
type ScanResult struct {
	Filename      string
	Duration      time.Duration
	RawSegments   int
	MergedClips   int
	ClipsExported int
	ClipPaths     []string
}

// ScanVideos orchestrates motion scanning for a list of video files. Each
// file runs through two phases: a full analysis decode pass, then one export
// pass per merged segment. A failure on one file is reported and the batch
// moves on; the failed file contributes zero clips.
func ScanVideos(
	ctx context.Context,
	cfg config.Config,
	filesToProcess []string,
	rep reporter.Reporter,
	log *logging.Logger,
) ([]ScanResult, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	if err := util.EnsureDirectory(cfg.OutputDir); err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("cannot create output directory %s", cfg.OutputDir), err)
	}

	var results []ScanResult

	// Show batch initialization for multiple files
	if len(filesToProcess) > 1 {
		var fileNames []string
		for _, f := range filesToProcess {
			fileNames = append(fileNames, util.GetFilename(f))
		}
		rep.BatchStarted(reporter.BatchStartInfo{
			TotalFiles: len(filesToProcess),
			FileList:   fileNames,
			OutputDir:  cfg.OutputDir,
		})
	}

	for fileIdx, inputPath := range filesToProcess {
		// Check for cancellation before starting each file
		if ctx.Err() != nil {
			rep.Warning(fmt.Sprintf("Scan cancelled: %v", ctx.Err()))
			log.Warn("Scan cancelled after %d of %d file(s)", fileIdx, len(filesToProcess))
			break
		}

		if len(filesToProcess) > 1 {
			rep.FileProgress(reporter.FileProgressContext{
				CurrentFile: fileIdx + 1,
				TotalFiles:  len(filesToProcess),
			})
		}

		result, err := scanOne(ctx, cfg, inputPath, rep, log)
		if err != nil {
			if errors.IsCancelled(err) {
				// Keep whatever the file managed to export before the cancel.
				if result.ClipsExported > 0 {
					results = append(results, result)
				}
				rep.Warning("Scan cancelled")
				log.Warn("Scan cancelled during %s", util.GetFilename(inputPath))
				break
			}
			rep.Error(reporter.ReporterError{
				Title:      "Scan Error",
				Message:    fmt.Sprintf("Could not scan %s: %v", util.GetFilename(inputPath), err),
				Context:    fmt.Sprintf("File: %s", inputPath),
				Suggestion: "Check if the file is a valid video format",
			})
			log.Error("Scan failed for %s: %v", inputPath, err)
			continue
		}

		results = append(results, result)
	}

	emitSummary(rep, results, len(filesToProcess))

	return results, nil
}

// scanOne runs the analysis and export phases for a single video.
func scanOne(
	ctx context.Context,
	cfg config.Config,
	inputPath string,
	rep reporter.Reporter,
	log *logging.Logger,
) (ScanResult, error) {
	fileStartTime := time.Now()
	inputFilename := util.GetFilename(inputPath)

	log.Info("Scanning %s", inputPath)

	src, err := video.Open(inputPath)
	if err != nil {
		return ScanResult{}, err
	}
	defer func() { _ = src.Close() }()

	props := src.Props()

	rep.ScanStarted(reporter.ScanSummary{
		InputFile:  inputFilename,
		Resolution: fmt.Sprintf("%dx%d", props.Width, props.Height),
		Duration:   util.FormatDuration(props.DurationSecs()),
		FPS:        props.FPS,
		FrameCount: props.FrameCount,
		Region:     formatRegion(cfg),
	})
	log.Debug("Properties: %dx%d, %.2f fps, %d frames",
		props.Width, props.Height, props.FPS, props.FrameCount)

	// Phase 1: analysis pass over the whole stream
	rep.AnalysisStarted(props.FrameCount)

	analysis, err := AnalyzeVideo(ctx, src, cfg, rep.AnalysisProgress)
	if err != nil {
		return ScanResult{}, err
	}

	merged := segment.Merge(analysis.RawSegments, props.FPS, cfg.MergeGapSecs)

	rep.AnalysisComplete(reporter.AnalysisOutcome{
		RawSegments:    len(analysis.RawSegments),
		MergedSegments: len(merged),
	})
	log.Info("Analysis: %d frames read, %d sampled, %d raw segment(s), %d after merging",
		analysis.FramesRead, analysis.FramesSampled, len(analysis.RawSegments), len(merged))

	// Phase 2: export one clip per merged segment. Each export re-opens the
	// source; the analysis handle is done with.
	exporter := &export.Exporter{
		OutputDir:         cfg.OutputDir,
		PaddingBeforeSecs: cfg.PaddingBeforeSecs,
		PaddingAfterSecs:  cfg.PaddingAfterSecs,
		Codec:             cfg.OutputCodec,
		Ext:               cfg.OutputExt,
	}

	result := ScanResult{
		Filename:    inputFilename,
		RawSegments: len(analysis.RawSegments),
		MergedClips: len(merged),
	}

	for clipIdx, seg := range merged {
		// Check for cancellation before each clip. Clips already written
		// stay on disk and in the result.
		if ctx.Err() != nil {
			result.Duration = time.Since(fileStartTime)
			return result, errors.NewCancelledError()
		}

		outputPath, written, err := exporter.Export(inputPath, seg)
		if err != nil {
			rep.Error(reporter.ReporterError{
				Title:      "Export Error",
				Message:    fmt.Sprintf("Could not export clip %d/%d from %s: %v", clipIdx+1, len(merged), inputFilename, err),
				Context:    fmt.Sprintf("Frames %d-%d", seg.Start, seg.End),
				Suggestion: "Check free disk space and output directory permissions",
			})
			log.Error("Export failed for %s clip %d: %v", inputFilename, clipIdx+1, err)
			continue
		}

		w := export.PaddedWindow(seg, props.FPS, props.FrameCount, cfg.PaddingBeforeSecs, cfg.PaddingAfterSecs)
		rep.ClipExported(reporter.ClipSummary{
			ClipIndex:     clipIdx + 1,
			ClipCount:     len(merged),
			OutputFile:    util.GetFilename(outputPath),
			FramesWritten: written,
			StartSecs:     util.FrameToSeconds(w.Start, props.FPS),
			EndSecs:       util.FrameToSeconds(w.End, props.FPS),
		})
		log.Info("Exported %s (%d frames)", outputPath, written)

		result.ClipsExported++
		result.ClipPaths = append(result.ClipPaths, outputPath)
	}

	result.Duration = time.Since(fileStartTime)

	rep.VideoComplete(reporter.VideoOutcome{
		InputFile:     inputFilename,
		ClipsExported: result.ClipsExported,
		TotalTime:     result.Duration,
	})
	log.Info("Finished %s: %d clip(s) in %s", inputFilename, result.ClipsExported, result.Duration.Round(time.Second))

	return result, nil
}

// emitSummary emits the end-of-run summary event appropriate for the batch size.
func emitSummary(rep reporter.Reporter, results []ScanResult, totalFiles int) {
	switch len(results) {
	case 0:
		rep.Warning("No files were successfully scanned")
	case 1:
		rep.OperationComplete(fmt.Sprintf("Scanned %s: %d clip(s) exported",
			results[0].Filename, results[0].ClipsExported))
	default:
		var totalDuration time.Duration
		totalClips := 0
		var fileResults []reporter.FileResult

		for _, r := range results {
			totalDuration += r.Duration
			totalClips += r.ClipsExported
			fileResults = append(fileResults, reporter.FileResult{
				Filename: r.Filename,
				Clips:    r.ClipsExported,
			})
		}

		rep.BatchComplete(reporter.BatchSummary{
			ProcessedCount: len(results),
			TotalFiles:     totalFiles,
			TotalClips:     totalClips,
			TotalDuration:  totalDuration,
			FileResults:    fileResults,
		})
	}
}

// formatRegion renders the configured region of interest for display.
func formatRegion(cfg config.Config) string {
	r := cfg.ROI
	if r.Empty() {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
