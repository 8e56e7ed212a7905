package video

import (
	"gocv.io/x/gocv"

	"github.com/mkarlsen/motioncut/internal/errors"
)

// Writer encodes frames to a new video file. Exported clips always carry the
// source's spatial dimensions and frame rate.
type Writer struct {
	path   string
	writer *gocv.VideoWriter
}

// NewWriter opens an output stream at path with the given FOURCC codec,
// frame rate, and dimensions.
func NewWriter(path, codec string, fps float64, width, height int) (*Writer, error) {
	w, err := gocv.VideoWriterFile(path, codec, fps, width, height, true)
	if err != nil {
		return nil, errors.NewVideoOpenError(path, err)
	}
	if !w.IsOpened() {
		_ = w.Close()
		return nil, errors.NewVideoOpenError(path, nil)
	}
	return &Writer{path: path, writer: w}, nil
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Write appends one frame to the output stream.
func (w *Writer) Write(frame gocv.Mat) error {
	if err := w.writer.Write(frame); err != nil {
		return errors.NewExportError("writing frame to "+w.path, err)
	}
	return nil
}

// Close finalizes the output stream.
func (w *Writer) Close() error {
	return w.writer.Close()
}
