// Package pattern defines the data handed from analysis to renderers.
// Patterns are pure data; renderers decide presentation.
package pattern

// PatternType identifies the kind of pattern.
type PatternType string

const (
	PatternTypeSummary     PatternType = "summary"
	PatternTypeLeaderboard PatternType = "leaderboard"
)

// Pattern is the interface all patterns implement.
type Pattern interface {
	Type() PatternType
}
