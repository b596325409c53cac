// Package layout breaks text into lines that fit a pixel width and picks the
// largest font size whose wrapped block fits a box.
package layout

import (
	"strings"

	"github.com/rptomey/silent-auction-card-generator/pkg/errors"
)

var ErrEmptyText = errors.New(errors.ErrCodeInvalidInput, "text to wrap is empty")

// Face is a font at one size that can measure rendered text in pixels.
type Face interface {
	Width(s string) float64
	BlockHeight(lines []string) float64
}

// Lines is wrapped text, one entry per rendered line.
type Lines []string

func (l Lines) String() string {
	return strings.Join(l, "\n")
}

// Wrap fills lines greedily: each word is appended to the current line while
// the line still measures within maxWidth, otherwise it starts a new line.
// A word wider than maxWidth gets a line of its own and is left to overflow.
func Wrap(text string, face Face, maxWidth float64) (Lines, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, ErrEmptyText
	}

	lines := make(Lines, 0, len(words))
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if face.Width(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}

	return append(lines, current), nil
}
