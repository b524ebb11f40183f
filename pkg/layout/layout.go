// Package layout provides the fixed-width text primitives used by textsum's
// report renderer: truncation with a suffix, centring, thousands separators
// and proportional column sizing.
//
// All widths are terminal cells as measured by go-runewidth. For ASCII input
// a cell is a character.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultSuffix is appended to text cut short by LimitWidth.
const DefaultSuffix = "..."

// ErrWidthTooSmall reports a target width that cannot hold the suffix.
var ErrWidthTooSmall = errors.New("width too small")

// Width returns the display width of s in terminal cells, summed rune by
// rune so that Width(a+b) == Width(a)+Width(b) for any a and b.
func Width(s string) int {
	w := 0
	for _, r := range s {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// LimitWidth returns text unchanged when it fits in maxWidth cells. Otherwise
// it keeps the longest prefix that leaves room for suffix and appends suffix,
// so the result is exactly maxWidth cells wide.
//
// maxWidth must be strictly greater than the width of suffix.
func LimitWidth(text string, maxWidth int, suffix string) (string, error) {
	suffixWidth := Width(suffix)
	if maxWidth <= suffixWidth {
		return "", fmt.Errorf("%w: max width %d must exceed suffix width %d", ErrWidthTooSmall, maxWidth, suffixWidth)
	}
	if Width(text) <= maxWidth {
		return text, nil
	}

	limit := maxWidth - suffixWidth
	var (
		cut strings.Builder
		w   int
	)
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if w+rw > limit {
			break
		}
		cut.WriteRune(r)
		w += rw
	}
	// A wide rune that did not fit leaves a hole to fill.
	return cut.String() + strings.Repeat(" ", limit-w) + suffix, nil
}

// Centre pads text with spaces on both sides to exactly maxWidth cells.
// When the padding is odd the extra space goes on the left.
// Text wider than maxWidth is truncated with LimitWidth instead.
func Centre(text string, maxWidth int, suffix string) (string, error) {
	w := Width(text)
	switch {
	case w == maxWidth:
		return text, nil
	case w > maxWidth:
		return LimitWidth(text, maxWidth, suffix)
	}

	pad := maxWidth - w
	right := pad / 2
	left := pad - right
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right), nil
}
