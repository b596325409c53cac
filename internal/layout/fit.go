package layout

import (
	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

const SizeStep = 2.0

// FaceSource builds a Face for a font size in points.
type FaceSource interface {
	Face(size float64) (Face, error)
}

type FaceSourceFunc func(size float64) (Face, error)

func (f FaceSourceFunc) Face(size float64) (Face, error) {
	return f(size)
}

// Fit is the outcome of FitText. Overflow is set when even the minimum size
// did not fit; Lines and Face then hold the minimum size attempt.
type Fit struct {
	Size     float64
	Face     Face
	Lines    Lines
	Height   float64
	Overflow bool
}

// Candidates lists the sizes FitText tries, largest first. minSize is always
// the last entry, even when stepping from startSize would skip over it.
func Candidates(startSize, minSize float64) []float64 {
	var sizes []float64
	for size := startSize; size > minSize; size -= SizeStep {
		sizes = append(sizes, size)
	}
	return append(sizes, minSize)
}

// FitText returns the largest candidate size whose wrapped text has a block
// height within maxHeight.
func FitText(text string, src FaceSource, maxWidth, maxHeight, startSize, minSize float64) (Fit, error) {
	switch {
	case minSize <= 0:
		return Fit{}, errors.New(errors.ErrCodeInvalidConfig, "minimum font size %g must be positive", minSize)
	case startSize < minSize:
		return Fit{}, errors.New(errors.ErrCodeInvalidConfig, "font size %g is below minimum %g", startSize, minSize)
	case maxWidth <= 0 || maxHeight <= 0:
		return Fit{}, errors.New(errors.ErrCodeInvalidConfig, "text box %gx%g must be positive", maxWidth, maxHeight)
	}

	var fit Fit
	for _, size := range Candidates(startSize, minSize) {
		face, err := src.Face(size)
		if err != nil {
			return Fit{}, err
		}

		lines, err := Wrap(text, face, maxWidth)
		if err != nil {
			return Fit{}, err
		}

		fit = Fit{
			Size:   size,
			Face:   face,
			Lines:  lines,
			Height: face.BlockHeight(lines),
		}
		if fit.Height <= maxHeight {
			return fit, nil
		}
	}

	fit.Overflow = true
	return fit, nil
}
