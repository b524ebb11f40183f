package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/textsum/pkg/pattern"
)

func samplePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		sampleBoard(
			pattern.LeaderboardItem{Name: "abc", Count: 4},
			pattern.LeaderboardItem{Name: "ba", Count: 4},
		),
		sampleStats(
			pattern.SummaryItem{Key: "words", Label: "Words", Value: 9},
			pattern.SummaryItem{Key: "whitespace", Label: "Whitespace", Value: 8},
		),
	}
}

func TestTerminal_Render(t *testing.T) {
	t.Parallel()

	box := newBox(t, nil)
	for _, name := range ThemeNames() {
		out, err := NewTerminal(box, ThemeByName(name)).Render(samplePatterns())
		require.NoError(t, err, name)

		plain, err := box.Render(samplePatterns())
		require.NoError(t, err)
		assert.Equal(t, strings.Count(plain, "\n"), strings.Count(out, "\n"), "theme %s keeps the line count", name)
		for _, want := range []string{"abc (4)", "ba (4)", "Words: 9", "Whitespace: 8", "Most common words"} {
			assert.Contains(t, out, want, "theme %s", name)
		}
	}
}

func TestTerminal_Render_When_TooNarrowContent(t *testing.T) {
	t.Parallel()

	box := newBox(t, func(o *BoxOptions) { o.Width = 11 })
	out, err := NewTerminal(box, MonoTheme()).Render(samplePatterns())
	require.NoError(t, err)
	assert.Contains(t, out, "...")
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("unknown").Name)
}

func TestLLM_Render(t *testing.T) {
	t.Parallel()

	out, err := NewLLM("notes\ttxt").Render(samplePatterns())
	require.NoError(t, err)

	want := strings.Join([]string{
		"SOURCE: notes txt",
		"TOP: 2 of 2 distinct",
		"  1. abc 4",
		"  2. ba 4",
		"STATS: words=9 whitespace=8",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "\x1b[")
}

func TestLLM_Render_When_Empty(t *testing.T) {
	t.Parallel()

	out, err := NewLLM("").Render(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	out, err := NewJSON("sample").Render(samplePatterns())
	require.NoError(t, err)

	var got struct {
		Version  string `json:"version"`
		Title    string `json:"title"`
		Distinct int    `json:"distinct"`
		Ranking  []struct {
			Word  string `json:"word"`
			Count int    `json:"count"`
			Rank  int    `json:"rank"`
		} `json:"ranking"`
		Stats map[string]int `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, jsonVersion, got.Version)
	assert.Equal(t, "sample", got.Title)
	assert.Equal(t, 2, got.Distinct)
	require.Len(t, got.Ranking, 2)
	assert.Equal(t, "ba", got.Ranking[1].Word)
	assert.Equal(t, 2, got.Ranking[1].Rank)
	assert.Equal(t, map[string]int{"words": 9, "whitespace": 8}, got.Stats)
}

func TestJSON_Render_When_Empty(t *testing.T) {
	t.Parallel()

	out, err := NewJSON("").Render(nil)
	require.NoError(t, err)
	assert.Contains(t, out, `"ranking": []`)
	assert.Contains(t, out, `"stats": {}`)
	assert.NotContains(t, out, `"title"`)
}
