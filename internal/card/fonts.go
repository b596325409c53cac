package card

import (
	"os"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/rptomey/silent-auction-card-generator/internal/layout"
	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

// Font is a parsed TrueType/OpenType file. Faces built from it belong to a
// single render and must not be shared between goroutines.
type Font struct {
	path   string
	parsed *opentype.Font
}

func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMissingResource, err, "font %s", path)
	}
	return ParseFont(path, data)
}

func ParseFont(path string, data []byte) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse font %s", path)
	}
	return &Font{path: path, parsed: parsed}, nil
}

// Face returns the font at size points (72 DPI, so points equal pixels).
func (f *Font) Face(size, lineSpacing float64) (*Face, error) {
	ff, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "font %s at %.1fpt", f.path, size)
	}

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(ff)
	return &Face{face: ff, size: size, lineSpacing: lineSpacing, measure: dc}, nil
}

// Source adapts the font to layout.FitText.
func (f *Font) Source(lineSpacing float64) layout.FaceSource {
	return layout.FaceSourceFunc(func(size float64) (layout.Face, error) {
		face, err := f.Face(size, lineSpacing)
		if err != nil {
			return nil, err
		}
		return face, nil
	})
}

// Face measures and draws text at one size.
type Face struct {
	face        font.Face
	size        float64
	lineSpacing float64
	measure     *gg.Context
}

func (f *Face) Size() float64 {
	return f.size
}

func (f *Face) Width(s string) float64 {
	w, _ := f.measure.MeasureString(s)
	return w
}

// BlockHeight is the top-to-bottom extent of lines stacked with the face's
// line spacing.
func (f *Face) BlockHeight(lines []string) float64 {
	_, h := f.measure.MeasureMultilineString(strings.Join(lines, "\n"), f.lineSpacing)
	return h
}

// BlockWidth is the width of the widest line.
func (f *Face) BlockWidth(lines []string) float64 {
	var widest float64
	for _, line := range lines {
		widest = max(widest, f.Width(line))
	}
	return widest
}
