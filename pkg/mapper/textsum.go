// Package mapper converts analysis results into patterns for rendering.
package mapper

import (
	"github.com/dkoosis/textsum/internal/textstat"
	"github.com/dkoosis/textsum/pkg/pattern"
	"github.com/dkoosis/textsum/pkg/rank"
)

// Labels used for the report headings.
const (
	RankingLabel = "Most common words"
	StatsLabel   = "Statistics"
)

// FromAnalysis builds a Leaderboard from the ranking and a Summary from the
// character statistics. distinct is the number of distinct words in the text.
func FromAnalysis(ranked []rank.Entry, distinct int, st textstat.Stats) []pattern.Pattern {
	return []pattern.Pattern{
		leaderboard(ranked, distinct),
		summary(st, distinct),
	}
}

func leaderboard(ranked []rank.Entry, distinct int) *pattern.Leaderboard {
	items := make([]pattern.LeaderboardItem, len(ranked))
	for i, e := range ranked {
		items[i] = pattern.LeaderboardItem{Name: e.Word, Count: e.Count, Rank: i + 1}
	}
	return &pattern.Leaderboard{
		Label:      RankingLabel,
		Items:      items,
		TotalCount: distinct,
	}
}

func summary(st textstat.Stats, distinct int) *pattern.Summary {
	return &pattern.Summary{
		Label: StatsLabel,
		Metrics: []pattern.SummaryItem{
			{Key: "words", Label: "Words", Value: st.WordCount()},
			{Key: "unique", Label: "Unique", Value: distinct},
			{Key: "characters", Label: "Characters", Value: st.Characters()},
			{Key: "letters", Label: "Letters", Value: st.Alphabetic},
			{Key: "numbers", Label: "Numbers", Value: st.Numeric},
			{Key: "symbols", Label: "Symbols", Value: st.Symbols},
			{Key: "whitespace", Label: "Whitespace", Value: st.Whitespace},
		},
	}
}
