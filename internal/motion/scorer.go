// Package motion scores frames for visually significant change inside a
// region of interest using consecutive-frame differencing.
package motion

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/mkarlsen/motioncut/internal/roi"
)

// Blur kernel applied before differencing to suppress sensor and
// compression noise.
var blurKernel = image.Pt(21, 21)

// Sample is the result of scoring a single frame. It is ephemeral; callers
// must not retain it across frames.
type Sample struct {
	// Detected is true when at least one contour meets the minimum area and
	// the changed fraction meets the sensitivity. Both are required.
	Detected bool
	// ChangedFraction is the fraction of ROI pixels that registered as
	// changed, in [0,1].
	ChangedFraction float64
}

// Scorer detects motion by comparing each scored frame against the previous
// one. It holds a single smoothed grayscale reference crop that is replaced
// on every scored frame; there is no accumulating background model. A Scorer
// owns its reference exclusively and is not safe for concurrent use.
type Scorer struct {
	threshold      float32
	minContourArea float64
	sensitivity    float64

	ref    gocv.Mat
	hasRef bool
}

// NewScorer creates a Scorer. The caller must Close it to release the
// reference image.
func NewScorer(threshold, minContourArea int, sensitivity float64) *Scorer {
	return &Scorer{
		threshold:      float32(threshold),
		minContourArea: float64(minContourArea),
		sensitivity:    sensitivity,
		ref:            gocv.NewMat(),
	}
}

// Reset clears the reference image. It must be called before reusing a
// Scorer on a new video so the first frame of the next stream reseeds.
func (s *Scorer) Reset() {
	s.clearRef()
}

// Close releases the reference image.
func (s *Scorer) Close() {
	_ = s.ref.Close()
}

// Score evaluates one frame against the stored reference within rect.
// The rectangle is normalized and clamped to the frame; a degenerate
// rectangle yields no motion and clears the reference. The first scored
// frame after a reset or a rectangle size change only seeds the reference
// and never signals motion.
func (s *Scorer) Score(frame gocv.Mat, rect roi.Rect) Sample {
	gray := gocv.NewMat()
	defer func() { _ = gray.Close() }()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer func() { _ = blurred.Close() }()
	gocv.GaussianBlur(gray, &blurred, blurKernel, 0, 0, gocv.BorderDefault)

	clamped := rect.Clamp(blurred.Cols(), blurred.Rows())
	if clamped.Empty() {
		// Nothing to compare against; drop any stale reference too.
		s.clearRef()
		return Sample{}
	}

	crop := blurred.Region(clamped.ToImageRect())
	defer func() { _ = crop.Close() }()

	// First frame, or the region changed shape: seed and report no motion.
	if !s.hasRef || s.ref.Rows() != crop.Rows() || s.ref.Cols() != crop.Cols() {
		s.setRef(crop)
		return Sample{}
	}

	delta := gocv.NewMat()
	defer func() { _ = delta.Close() }()
	gocv.AbsDiff(s.ref, crop, &delta)

	mask := gocv.NewMat()
	defer func() { _ = mask.Close() }()
	gocv.Threshold(delta, &mask, s.threshold, 255, gocv.ThresholdBinary)

	// Two dilation passes close small holes in the change mask.
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer func() { _ = kernel.Close() }()
	gocv.Dilate(mask, &mask, kernel)
	gocv.Dilate(mask, &mask, kernel)

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	significant := false
	for i := 0; i < contours.Size(); i++ {
		if gocv.ContourArea(contours.At(i)) >= s.minContourArea {
			significant = true
			break
		}
	}

	changed := 0.0
	if total := mask.Rows() * mask.Cols(); total > 0 {
		changed = float64(gocv.CountNonZero(mask)) / float64(total)
	}

	// Frame-to-frame differencing: the current crop becomes the next
	// reference whether or not motion was detected.
	s.setRef(crop)

	return Sample{
		Detected:        significant && changed >= s.sensitivity,
		ChangedFraction: changed,
	}
}

func (s *Scorer) setRef(crop gocv.Mat) {
	_ = s.ref.Close()
	s.ref = crop.Clone()
	s.hasRef = true
}

func (s *Scorer) clearRef() {
	if !s.hasRef {
		return
	}
	_ = s.ref.Close()
	s.ref = gocv.NewMat()
	s.hasRef = false
}
