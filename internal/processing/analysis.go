// Package processing orchestrates the motion scan pipeline: analysis,
// segment merging, and clip export across one or more video files.
package processing

import (
	"context"

	"gocv.io/x/gocv"

	"github.com/mkarlsen/motioncut/internal/config"
	"github.com/mkarlsen/motioncut/internal/errors"
	"github.com/mkarlsen/motioncut/internal/motion"
	"github.com/mkarlsen/motioncut/internal/reporter"
	"github.com/mkarlsen/motioncut/internal/segment"
	"github.com/mkarlsen/motioncut/internal/video"
)

// AnalysisResult contains the outcome of the analysis pass over one video.
type AnalysisResult struct {
	Props         video.Properties
	RawSegments   []segment.Segment
	FramesRead    int
	FramesSampled int
}

// AnalyzeVideo performs the full-stream analysis pass: it decodes every frame
// sequentially, scores every FrameSkip-th frame, and tracks motion segments
// by source frame index. A mid-stream decode failure is treated as end of
// stream, not an error. Cancellation is checked once per sampled frame.
func AnalyzeVideo(
	ctx context.Context,
	src *video.Source,
	cfg config.Config,
	onProgress func(reporter.AnalysisSnapshot),
) (AnalysisResult, error) {
	props := src.Props()

	scorer := motion.NewScorer(cfg.Threshold, cfg.MinContourArea, cfg.Sensitivity)
	defer scorer.Close()

	tracker := segment.NewTracker()

	frame := gocv.NewMat()
	defer func() { _ = frame.Close() }()

	index := 0
	sampled := 0

	for {
		if !src.Read(&frame) {
			break
		}

		if index%cfg.FrameSkip == 0 {
			if ctx.Err() != nil {
				return AnalysisResult{}, errors.NewCancelledError()
			}

			sample := scorer.Score(frame, cfg.ROI)
			tracker.Observe(index, sample.Detected)
			sampled++

			if onProgress != nil {
				onProgress(reporter.AnalysisSnapshot{
					CurrentFrame: index,
					TotalFrames:  props.FrameCount,
					Percent:      percentOf(index, props.FrameCount),
				})
			}
		}

		index++
	}

	tracker.Finish()

	return AnalysisResult{
		Props:         props,
		RawSegments:   tracker.Segments(),
		FramesRead:    index,
		FramesSampled: sampled,
	}, nil
}

func percentOf(current, total int) float32 {
	if total <= 0 {
		return 0
	}
	return float32(current) / float32(total) * 100
}
