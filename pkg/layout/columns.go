package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidProportion reports a column proportion with a non-positive or
// non-finite part.
var ErrInvalidProportion = errors.New("invalid column proportion")

// Proportion is the relative share of the words column and the counts column.
type Proportion struct {
	Words  float64
	Counts float64
}

// DefaultProportion gives the words column 70% of the usable width.
var DefaultProportion = Proportion{Words: 7, Counts: 3}

// Validate checks that both parts are positive, finite numbers.
func (p Proportion) Validate() error {
	for _, v := range []float64{p.Words, p.Counts} {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: %s", ErrInvalidProportion, p)
		}
	}
	return nil
}

func (p Proportion) String() string {
	return strconv.FormatFloat(p.Words, 'g', -1, 64) + ":" + strconv.FormatFloat(p.Counts, 'g', -1, 64)
}

// ParseProportion parses "7:3" style proportions.
func ParseProportion(s string) (Proportion, error) {
	words, counts, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Proportion{}, fmt.Errorf("%w: %q (expected WORDS:COUNTS)", ErrInvalidProportion, s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(words), 64)
	if err != nil {
		return Proportion{}, fmt.Errorf("%w: %q: %v", ErrInvalidProportion, s, err)
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(counts), 64)
	if err != nil {
		return Proportion{}, fmt.Errorf("%w: %q: %v", ErrInvalidProportion, s, err)
	}
	p := Proportion{Words: w, Counts: c}
	if err := p.Validate(); err != nil {
		return Proportion{}, err
	}
	return p, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Proportion) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a proportion can be
// written as "7:3" in config files.
func (p *Proportion) UnmarshalText(text []byte) error {
	parsed, err := ParseProportion(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Columns holds the widths chosen for a two-column layout.
type Columns struct {
	Words  int
	Counts int
}

// Total returns the combined width of both columns.
func (c Columns) Total() int { return c.Words + c.Counts }

// SplitColumns divides usable cells between the words and counts columns.
//
// The natural split follows p, rounded so the two widths always sum to
// usable. If one column is narrower than its widest content (wordsNeed or
// countsNeed) while the other has room to spare, width moves from the spare
// column to the tight one, never more than either the shortfall or the
// spare. Each column is finally held at minColumn or wider.
func SplitColumns(usable int, p Proportion, wordsNeed, countsNeed, minColumn int) (Columns, error) {
	if err := p.Validate(); err != nil {
		return Columns{}, err
	}
	if usable < 2*minColumn {
		return Columns{}, fmt.Errorf("%w: usable width %d cannot hold two columns of %d", ErrWidthTooSmall, usable, minColumn)
	}

	words := int(math.Round(float64(usable) * p.Words / (p.Words + p.Counts)))
	cols := Columns{Words: words, Counts: usable - words}

	switch {
	case cols.Words < wordsNeed && cols.Counts > countsNeed:
		shift := min(wordsNeed-cols.Words, cols.Counts-countsNeed)
		cols.Words += shift
		cols.Counts -= shift
	case cols.Counts < countsNeed && cols.Words > wordsNeed:
		shift := min(countsNeed-cols.Counts, cols.Words-wordsNeed)
		cols.Counts += shift
		cols.Words -= shift
	}

	if cols.Words < minColumn {
		cols.Counts -= minColumn - cols.Words
		cols.Words = minColumn
	}
	if cols.Counts < minColumn {
		cols.Words -= minColumn - cols.Counts
		cols.Counts = minColumn
	}
	return cols, nil
}
