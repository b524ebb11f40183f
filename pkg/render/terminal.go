package render

import (
	"strings"

	"github.com/dkoosis/textsum/pkg/pattern"
)

// Terminal renders the boxed report with lipgloss styles. Layout is done on
// the plain text first, so escape codes never count toward the width.
type Terminal struct {
	box   *Box
	theme Theme
}

// NewTerminal creates a styled renderer around box.
func NewTerminal(box *Box, theme Theme) *Terminal {
	return &Terminal{box: box, theme: theme}
}

// Render formats the report for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) (string, error) {
	board, stats := splitPatterns(patterns)
	rows, err := t.box.rows(board, stats)
	if err != nil {
		return "", err
	}

	st := themeStyler{theme: t.theme}
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(t.box.join(r, st))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

type themeStyler struct {
	theme Theme
}

func (s themeStyler) rule(str string) string { return s.theme.Border.Render(str) }

func (s themeStyler) border(str string) string { return s.theme.Border.Render(str) }

func (s themeStyler) cell(kind rowKind, col int, str string) string {
	switch {
	case kind == rowTitle:
		return s.theme.Title.Render(str)
	case kind == rowHeading:
		return s.theme.Heading.Render(str)
	case kind == rowStat || col == 1:
		return s.theme.Stat.Render(str)
	default:
		return s.theme.Word.Render(str)
	}
}
