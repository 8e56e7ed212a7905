// Package video wraps gocv capture and writer handles behind the small
// surface the motion pipeline needs: sequential reads, frame-index seeks,
// stream properties, and frame-for-frame clip writing.
package video

import (
	"gocv.io/x/gocv"

	"github.com/mkarlsen/motioncut/internal/errors"
)

// Properties describes a decodable video stream.
type Properties struct {
	Width      int
	Height     int
	FPS        float64
	FrameCount int
}

// DurationSecs returns the stream duration in seconds, or 0 when the frame
// rate is unknown.
func (p Properties) DurationSecs() float64 {
	if p.FPS <= 0 {
		return 0
	}
	return float64(p.FrameCount) / p.FPS
}

// Source is a sequentially decodable video file that supports seeking to a
// frame index. A Source is owned by a single goroutine; it is not safe for
// concurrent use.
type Source struct {
	path string
	cap  *gocv.VideoCapture
}

// Open opens the video file at path for decoding.
func Open(path string) (*Source, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, errors.NewVideoOpenError(path, err)
	}
	if !cap.IsOpened() {
		_ = cap.Close()
		return nil, errors.NewVideoOpenError(path, nil)
	}
	return &Source{path: path, cap: cap}, nil
}

// Path returns the path the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// Props reports the stream dimensions, frame rate, and total frame count.
func (s *Source) Props() Properties {
	return Properties{
		Width:      int(s.cap.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(s.cap.Get(gocv.VideoCaptureFrameHeight)),
		FPS:        s.cap.Get(gocv.VideoCaptureFPS),
		FrameCount: int(s.cap.Get(gocv.VideoCaptureFrameCount)),
	}
}

// Read decodes the next frame into dst. It returns false at end of stream or
// on a decode failure; the pipeline treats both the same way.
func (s *Source) Read(dst *gocv.Mat) bool {
	if ok := s.cap.Read(dst); !ok || dst.Empty() {
		return false
	}
	return true
}

// Seek positions the decoder so the next Read returns the frame at index.
func (s *Source) Seek(index int) {
	s.cap.Set(gocv.VideoCapturePosFrames, float64(index))
}

// Close releases the capture handle.
func (s *Source) Close() error {
	return s.cap.Close()
}

// FirstFrame decodes and returns the first frame of the video at path,
// along with its dimensions. Callers own the returned Mat and must Close it.
// External collaborators use this for region-of-interest selection.
func FirstFrame(path string) (gocv.Mat, int, int, error) {
	src, err := Open(path)
	if err != nil {
		return gocv.Mat{}, 0, 0, err
	}
	defer func() { _ = src.Close() }()

	frame := gocv.NewMat()
	if !src.Read(&frame) {
		_ = frame.Close()
		return gocv.Mat{}, 0, 0, errors.NewVideoReadError(path)
	}
	return frame, frame.Cols(), frame.Rows(), nil
}
