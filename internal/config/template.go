package config

import (
	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

type Point struct {
	X, Y int
}

type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the box has no area, meaning no wrapping or fitting.
func (r Rect) Empty() bool {
	return r.Width == 0 && r.Height == 0
}

// TemplateConfig is the validated layout for one template.
type TemplateConfig struct {
	ID string

	ItemFont    string
	ItemMinSize float64
	ItemMaxSize float64
	ItemBox     Rect

	BidFont     string
	BidSize     float64
	BidPosition Point

	QRPosition Point
	QRSize     int
}

// Template resolves the layout for id. A missing entry and a malformed entry
// fail with different codes so the caller can report which one it was.
func (c *Config) Template(id string) (TemplateConfig, error) {
	spec, ok := c.Templates[id]
	if !ok {
		return TemplateConfig{}, errors.New(errors.ErrCodeMissingTemplateConfig, "no layout configured for template %q", id)
	}

	item := spec.Item
	if item.Font == "" {
		return TemplateConfig{}, errors.New(errors.ErrCodeInvalidConfig, "template %q: item font is not set", id)
	}
	if item.Size <= 0 {
		return TemplateConfig{}, errors.New(errors.ErrCodeInvalidConfig, "template %q: item size %d must be positive", id, item.Size)
	}
	minSize := item.MinSize
	if minSize == 0 {
		minSize = item.Size
	}
	if minSize < 0 || minSize > item.Size {
		return TemplateConfig{}, errors.New(errors.ErrCodeInvalidConfig, "template %q: item min_size %d must be between 1 and size %d", id, minSize, item.Size)
	}
	box := Rect{X: item.X, Y: item.Y, Width: item.Width, Height: item.Height}
	if !box.Empty() && (box.Width <= 0 || box.Height <= 0) {
		return TemplateConfig{}, errors.New(errors.ErrCodeInvalidConfig, "template %q: item box %dx%d needs both width and height", id, box.Width, box.Height)
	}

	bid := spec.Bid
	bidFont := bid.Font
	if bidFont == "" {
		bidFont = item.Font
	}
	if bid.Size <= 0 {
		return TemplateConfig{}, errors.New(errors.ErrCodeInvalidConfig, "template %q: bid size %d must be positive", id, bid.Size)
	}

	qrSize := spec.QR.Size
	if qrSize <= 0 {
		qrSize = c.QRSize
	}

	return TemplateConfig{
		ID:          id,
		ItemFont:    item.Font,
		ItemMinSize: float64(minSize),
		ItemMaxSize: float64(item.Size),
		ItemBox:     box,
		BidFont:     bidFont,
		BidSize:     float64(bid.Size),
		BidPosition: Point{X: bid.X, Y: bid.Y},
		QRPosition:  Point{X: spec.QR.X, Y: spec.QR.Y},
		QRSize:      qrSize,
	}, nil
}
