package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/textsum/pkg/layout"
	"github.com/dkoosis/textsum/pkg/pattern"
)

// Defaults for BoxOptions.
const (
	DefaultWidth     = 80
	DefaultColumns   = 2
	DefaultBorder    = '|'
	DefaultSeparator = '='

	defaultRankingHeading = "Most common words"
	defaultStatsHeading   = "Statistics"
)

var (
	// ErrLineWidth means a rendered line came out at the wrong width. It
	// signals a layout bug, never bad input.
	ErrLineWidth = errors.New("rendered line has wrong width")
	// ErrInvalidOptions reports an unusable column count or glyph.
	ErrInvalidOptions = errors.New("invalid box options")
)

// BoxOptions configures the fixed-width report.
type BoxOptions struct {
	Width      int               // total line width in cells
	Columns    int               // 1: ranking then statistics; 2: side by side
	Proportion layout.Proportion // words:counts share of a two-column layout
	Suffix     string            // appended to truncated text
	Title      string            // optional title row
	Border     rune
	Separator  rune
}

// DefaultBoxOptions returns an 80-wide, two-column 7:3 layout.
func DefaultBoxOptions() BoxOptions {
	return BoxOptions{
		Width:      DefaultWidth,
		Columns:    DefaultColumns,
		Proportion: layout.DefaultProportion,
		Suffix:     layout.DefaultSuffix,
		Border:     DefaultBorder,
		Separator:  DefaultSeparator,
	}
}

// MinWidth returns the narrowest total width the options can render: each
// cell must be wider than the suffix.
func (o BoxOptions) MinWidth() int {
	cell := layout.Width(o.Suffix) + 1
	if o.Columns == 1 {
		return cell + 2
	}
	return 2*cell + 3
}

// Validate checks the geometry once so rendering never emits a short line.
func (o BoxOptions) Validate() error {
	if o.Columns != 1 && o.Columns != 2 {
		return fmt.Errorf("%w: columns must be 1 or 2, got %d", ErrInvalidOptions, o.Columns)
	}
	for _, g := range []rune{o.Border, o.Separator} {
		if runewidth.RuneWidth(g) != 1 {
			return fmt.Errorf("%w: border glyph %q must be one cell wide", ErrInvalidOptions, g)
		}
	}
	if o.Columns == 2 {
		if err := o.Proportion.Validate(); err != nil {
			return err
		}
	}
	if minWidth := o.MinWidth(); o.Width < minWidth {
		return fmt.Errorf("%w: width %d is below the minimum of %d for %d column(s) with suffix %q",
			layout.ErrWidthTooSmall, o.Width, minWidth, o.Columns, o.Suffix)
	}
	return nil
}

// Box renders a Leaderboard and a Summary as a bordered, fixed-width block
// of plain text. Every line it returns is exactly Width cells.
type Box struct {
	opts BoxOptions
}

// NewBox validates opts and returns a Box.
func NewBox(opts BoxOptions) (*Box, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Title = cleanTitle(opts.Title)
	return &Box{opts: opts}, nil
}

// Options returns the validated options.
func (b *Box) Options() BoxOptions { return b.opts }

// Render implements Renderer.
func (b *Box) Render(patterns []pattern.Pattern) (string, error) {
	board, stats := splitPatterns(patterns)
	lines, err := b.Lines(board, stats)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// Lines renders the report. Either argument may be nil.
func (b *Box) Lines(board *pattern.Leaderboard, stats *pattern.Summary) ([]string, error) {
	rows, err := b.rows(board, stats)
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = b.join(r, plainStyler{})
	}
	return lines, nil
}

// Columns returns the column widths a two-column render would use.
func (b *Box) Columns(board *pattern.Leaderboard, stats *pattern.Summary) (layout.Columns, error) {
	words, counts := b.phrases(board, stats)
	return b.split(board, stats, words, counts)
}

type rowKind int

const (
	rowRule rowKind = iota
	rowTitle
	rowHeading
	rowBody
	rowStat // statistics body row in the single-column layout
)

// row is one line of the report before joining: a rule, or one or two
// already-sized cells.
type row struct {
	kind  rowKind
	cells []string
}

// styler decorates the pieces of a row as it is joined.
type styler interface {
	rule(s string) string
	border(s string) string
	cell(kind rowKind, col int, s string) string
}

type plainStyler struct{}

func (plainStyler) rule(s string) string { return s }

func (plainStyler) border(s string) string { return s }

func (plainStyler) cell(_ rowKind, _ int, s string) string { return s }

func (b *Box) join(r row, st styler) string {
	if r.kind == rowRule {
		return st.rule(strings.Repeat(string(b.opts.Separator), b.opts.Width))
	}
	border := st.border(string(b.opts.Border))
	var sb strings.Builder
	sb.WriteString(border)
	for i, c := range r.cells {
		if i > 0 {
			sb.WriteString(border)
		}
		sb.WriteString(st.cell(r.kind, i, c))
	}
	sb.WriteString(border)
	return sb.String()
}

// rows lays out the report and checks every joined line against Width.
func (b *Box) rows(board *pattern.Leaderboard, stats *pattern.Summary) ([]row, error) {
	var (
		rows []row
		err  error
	)
	if b.opts.Columns == 1 {
		rows, err = b.singleColumn(board, stats)
	} else {
		rows, err = b.twoColumn(board, stats)
	}
	if err != nil {
		return nil, err
	}

	for i, r := range rows {
		if w := layout.Width(b.join(r, plainStyler{})); w != b.opts.Width {
			return nil, fmt.Errorf("%w: line %d is %d cells, want %d", ErrLineWidth, i+1, w, b.opts.Width)
		}
	}
	return rows, nil
}

func (b *Box) singleColumn(board *pattern.Leaderboard, stats *pattern.Summary) ([]row, error) {
	inner := b.opts.Width - 2
	words, counts := b.phrases(board, stats)

	rows := []row{{kind: rowRule}}
	if b.opts.Title != "" {
		cell, err := layout.Centre(b.opts.Title, inner, b.opts.Suffix)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{kind: rowTitle, cells: []string{cell}}, row{kind: rowRule})
	}

	sections := []struct {
		heading string
		body    []string
		kind    rowKind
		show    bool
	}{
		{rankingHeading(board), words, rowBody, true},
		{statsHeading(stats), counts, rowStat, stats != nil},
	}
	for i, sec := range sections {
		if !sec.show {
			continue
		}
		if i > 0 && rows[len(rows)-1].kind != rowRule {
			rows = append(rows, row{kind: rowRule})
		}
		heading, err := layout.Centre(sec.heading+":", inner, b.opts.Suffix)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{kind: rowHeading, cells: []string{heading}}, row{kind: rowRule})
		for _, phrase := range sec.body {
			cell, err := layout.Centre(phrase, inner, b.opts.Suffix)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row{kind: sec.kind, cells: []string{cell}})
		}
	}

	if rows[len(rows)-1].kind != rowRule {
		rows = append(rows, row{kind: rowRule})
	}
	return rows, nil
}

func (b *Box) twoColumn(board *pattern.Leaderboard, stats *pattern.Summary) ([]row, error) {
	words, counts := b.phrases(board, stats)
	cols, err := b.split(board, stats, words, counts)
	if err != nil {
		return nil, err
	}

	pair := func(kind rowKind, left, right string) (row, error) {
		l, err := layout.Centre(left, cols.Words, b.opts.Suffix)
		if err != nil {
			return row{}, err
		}
		r, err := layout.Centre(right, cols.Counts, b.opts.Suffix)
		if err != nil {
			return row{}, err
		}
		return row{kind: kind, cells: []string{l, r}}, nil
	}

	rows := []row{{kind: rowRule}}
	if b.opts.Title != "" {
		cell, err := layout.Centre(b.opts.Title, b.opts.Width-2, b.opts.Suffix)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{kind: rowTitle, cells: []string{cell}}, row{kind: rowRule})
	}

	heading, err := pair(rowHeading, rankingHeading(board), statsHeading(stats))
	if err != nil {
		return nil, err
	}
	rows = append(rows, heading, row{kind: rowRule})

	n := max(len(words), len(counts))
	for i := 0; i < n; i++ {
		var left, right string
		if i < len(words) {
			left = words[i]
		}
		if i < len(counts) {
			right = counts[i]
		}
		body, err := pair(rowBody, left, right)
		if err != nil {
			return nil, err
		}
		rows = append(rows, body)
	}
	if n > 0 {
		rows = append(rows, row{kind: rowRule})
	}
	return rows, nil
}

// split sizes the two columns from the widest phrase on each side.
func (b *Box) split(board *pattern.Leaderboard, stats *pattern.Summary, words, counts []string) (layout.Columns, error) {
	wordsNeed := layout.Width(rankingHeading(board))
	for _, p := range words {
		wordsNeed = max(wordsNeed, layout.Width(p))
	}
	countsNeed := layout.Width(statsHeading(stats))
	for _, p := range counts {
		countsNeed = max(countsNeed, layout.Width(p))
	}
	minColumn := layout.Width(b.opts.Suffix) + 1
	return layout.SplitColumns(b.opts.Width-3, b.opts.Proportion, wordsNeed, countsNeed, minColumn)
}

// phrases formats "word (count)" for each ranked item and "Label: value"
// for each statistic.
func (b *Box) phrases(board *pattern.Leaderboard, stats *pattern.Summary) (words, counts []string) {
	if board != nil {
		words = make([]string, len(board.Items))
		for i, item := range board.Items {
			words[i] = item.Name + " (" + layout.CommaSeparate(item.Count) + ")"
		}
	}
	if stats != nil {
		counts = make([]string, len(stats.Metrics))
		for i, m := range stats.Metrics {
			counts[i] = m.Label + ": " + layout.CommaSeparate(m.Value)
		}
	}
	return words, counts
}

func rankingHeading(board *pattern.Leaderboard) string {
	if board == nil || board.Label == "" {
		return defaultRankingHeading
	}
	return board.Label
}

func statsHeading(stats *pattern.Summary) string {
	if stats == nil || stats.Label == "" {
		return defaultStatsHeading
	}
	return stats.Label
}

// cleanTitle collapses whitespace and drops runes that do not occupy a
// cell, so the title cannot break the fixed width.
func cleanTitle(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if !unicode.IsPrint(r) || runewidth.RuneWidth(r) == 0 {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func splitPatterns(patterns []pattern.Pattern) (*pattern.Leaderboard, *pattern.Summary) {
	var (
		board *pattern.Leaderboard
		stats *pattern.Summary
	)
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Leaderboard:
			board = v
		case *pattern.Summary:
			stats = v
		}
	}
	return board, stats
}
