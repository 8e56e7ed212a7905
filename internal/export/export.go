// Package export writes padded sub-clips of a source video covering merged
// motion segments.
package export

import (
	"path/filepath"
	"time"

	"gocv.io/x/gocv"

	"github.com/mkarlsen/motioncut/internal/segment"
	"github.com/mkarlsen/motioncut/internal/util"
	"github.com/mkarlsen/motioncut/internal/video"
)

// timestampLayout is the generation timestamp suffix on clip filenames.
// It makes names collision-free across runs at the cost of reproducibility.
const timestampLayout = "20060102_150405"

// Window is a padded, clamped frame range ready for export.
type Window struct {
	Start int
	End   int
}

// FrameCount returns the number of frames the window requests.
func (w Window) FrameCount() int {
	return w.End - w.Start + 1
}

// PaddedWindow expands a segment by the configured paddings and clamps the
// result to [0, totalFrames-1]. Padding frame counts are floored.
func PaddedWindow(seg segment.Segment, fps float64, totalFrames int, beforeSecs, afterSecs float64) Window {
	padBefore := int(beforeSecs * fps)
	padAfter := int(afterSecs * fps)

	return Window{
		Start: max(0, seg.Start-padBefore),
		End:   min(totalFrames-1, seg.End+padAfter),
	}
}

// ClipName builds the output filename for a window:
// {base}_motion_{start_s:.1f}s-{end_s:.1f}s_{timestamp}{ext}.
// The window bounds are converted to seconds at the source frame rate.
func ClipName(sourcePath string, w Window, fps float64, ts time.Time, ext string) string {
	base := util.GetFileStem(sourcePath)
	start := util.FormatSeconds(util.FrameToSeconds(w.Start, fps))
	end := util.FormatSeconds(util.FrameToSeconds(w.End, fps))
	return base + "_motion_" + start + "-" + end + "_" + ts.Format(timestampLayout) + ext
}

// Exporter writes clips for merged segments into OutputDir. Each export
// re-opens the source independently, seeks to the window start, and copies
// frames one by one.
type Exporter struct {
	OutputDir         string
	PaddingBeforeSecs float64
	PaddingAfterSecs  float64
	Codec             string
	Ext               string

	// OnProgress, when set, is called after every written frame with the
	// written count and the requested total.
	OnProgress func(written, total int)
}

// Export writes one padded clip for seg and returns its path and the number
// of frames written. The source ending early is not an error; the clip is
// simply shorter than requested. Source and writer handles are released on
// every exit path.
func (e *Exporter) Export(sourcePath string, seg segment.Segment) (string, int, error) {
	src, err := video.Open(sourcePath)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = src.Close() }()

	props := src.Props()
	w := PaddedWindow(seg, props.FPS, props.FrameCount, e.PaddingBeforeSecs, e.PaddingAfterSecs)
	outputPath := filepath.Join(e.OutputDir, ClipName(sourcePath, w, props.FPS, time.Now(), e.Ext))

	writer, err := video.NewWriter(outputPath, e.Codec, props.FPS, props.Width, props.Height)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = writer.Close() }()

	src.Seek(w.Start)

	frame := gocv.NewMat()
	defer func() { _ = frame.Close() }()

	total := w.FrameCount()
	written := 0
	for written < total {
		if !src.Read(&frame) {
			break
		}
		if err := writer.Write(frame); err != nil {
			return "", written, err
		}
		written++
		if e.OnProgress != nil {
			e.OnProgress(written, total)
		}
	}

	return outputPath, written, nil
}
