package layout

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		maxWidth int
		suffix   string
		want     string
	}{
		{"shorter than max", "abcd", 10, DefaultSuffix, "abcd"},
		{"exactly max", "abcd", 4, DefaultSuffix, "abcd"},
		{"truncated with default suffix", "abcd efghi", 9, DefaultSuffix, "abcd e..."},
		{"truncated with custom suffix", "abcd efghi", 9, "II", "abcd efII"},
		{"custom suffix fits", "abcd efghi", 99, "II", "abcd efghi"},
		{"empty suffix", "abcdef", 3, "", "abc"},
		{"empty text", "", 4, DefaultSuffix, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LimitWidth(tt.text, tt.maxWidth, tt.suffix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLimitWidth_When_MaxNotWiderThanSuffix(t *testing.T) {
	t.Parallel()

	for _, maxWidth := range []int{-1, 0, 2, 3} {
		_, err := LimitWidth("abcdef", maxWidth, DefaultSuffix)
		require.ErrorIs(t, err, ErrWidthTooSmall, "max width %d", maxWidth)
	}

	// The check does not depend on whether truncation is needed.
	_, err := LimitWidth("a", 3, DefaultSuffix)
	assert.ErrorIs(t, err, ErrWidthTooSmall)
}

func TestLimitWidth_When_AppliedTwice(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a", "abcd efghi", strings.Repeat("word ", 40), "日本語のテキスト"}
	for _, s := range inputs {
		for w := 4; w < 30; w++ {
			once, err := LimitWidth(s, w, DefaultSuffix)
			require.NoError(t, err)
			twice, err := LimitWidth(once, w, DefaultSuffix)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "input %q width %d", s, w)
			assert.LessOrEqual(t, Width(once), w)
		}
	}
}

func TestLimitWidth_When_WideRunesDoNotFit(t *testing.T) {
	t.Parallel()

	// Each kanji is two cells; five cells of budget hold two of them and a pad.
	got, err := LimitWidth("日本語のテキスト", 8, DefaultSuffix)
	require.NoError(t, err)
	assert.Equal(t, "日本 ...", got)
	assert.Equal(t, 8, Width(got))
}

func TestCentre(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		maxWidth int
		want     string
	}{
		{"", 3, "   "},
		{"a", 3, " a "},
		{"a", 4, "  a "},
		{"ab", 3, " ab"},
		{"abc", 3, "abc"},
		{"ab", 5, "  ab "},
		{"abc", 5, " abc "},
		{"abc", 6, "  abc "},
	}

	for _, tt := range tests {
		got, err := Centre(tt.text, tt.maxWidth, DefaultSuffix)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Centre(%q, %d)", tt.text, tt.maxWidth)
	}
}

func TestCentre_When_TextTooWide(t *testing.T) {
	t.Parallel()

	got, err := Centre("abcd edds", 4, DefaultSuffix)
	require.NoError(t, err)
	want, err := LimitWidth("abcd edds", 4, DefaultSuffix)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "a...", got)

	_, err = Centre("abcd edds", 3, DefaultSuffix)
	assert.ErrorIs(t, err, ErrWidthTooSmall)
}

func TestCentre_When_AnyWidth(t *testing.T) {
	t.Parallel()

	for w := 4; w <= 40; w++ {
		for _, s := range []string{"", "x", "Most common words", strings.Repeat("z", 50)} {
			got, err := Centre(s, w, DefaultSuffix)
			require.NoError(t, err)
			assert.Equal(t, w, Width(got), "Centre(%q, %d) = %q", s, w, got)
		}
	}
}

func TestCommaSeparate(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:             "0",
		7:             "7",
		999:           "999",
		1000:          "1,000",
		12345:         "12,345",
		100000:        "100,000",
		1005502:       "1,005,502",
		1234567890123: "1,234,567,890,123",
	}
	for n, want := range tests {
		assert.Equal(t, want, CommaSeparate(n))
	}
}

func TestCommaSeparate_When_RoundTripped(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{0, 1, 10, 999, 1000, 1001, 65535, 1005502, 9876543210, 1<<62 + 12345} {
		s := CommaSeparate64(n)
		assert.False(t, strings.HasPrefix(s, ","), s)
		assert.False(t, strings.HasSuffix(s, ","), s)
		back, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
		require.NoError(t, err)
		assert.Equal(t, n, back)
	}
}

func TestWidth_When_Concatenated(t *testing.T) {
	t.Parallel()

	parts := []string{"", "x", " ", "|", "ำ", "ำนวน", "ก", "\u0301", "日本", "..."}
	for _, a := range parts {
		for _, b := range parts {
			assert.Equal(t, Width(a)+Width(b), Width(a+b), "Width(%q + %q)", a, b)
		}
	}
}

func TestCentre_When_LeadingSpacingMark(t *testing.T) {
	t.Parallel()

	for w := 4; w <= 20; w++ {
		for _, s := range []string{"ำนวน", "ำ", strings.Repeat("ำนวน", 10)} {
			got, err := Centre(s, w, DefaultSuffix)
			require.NoError(t, err)
			assert.Equal(t, w, Width("|"+got+"|")-2, "Centre(%q, %d) = %q", s, w, got)
		}
	}
}
