package card

import (
	"github.com/fogleman/gg"
)

// drawLines draws lines top-down from y, each centered on the column that
// starts at x and is width wide.
func drawLines(dc *gg.Context, face *Face, lines []string, x, y, width float64) {
	dc.SetFontFace(face.face)
	step := dc.FontHeight() * face.lineSpacing
	cx := x + width/2
	for _, line := range lines {
		dc.DrawStringAnchored(line, cx, y, 0.5, 1)
		y += step
	}
}
