package pattern

// Leaderboard is a ranked list of words by occurrence count.
type Leaderboard struct {
	Label      string            `json:"label"`
	Items      []LeaderboardItem `json:"items"`
	TotalCount int               `json:"total_count"` // distinct words before cutting to top N
}

// LeaderboardItem is a single ranked entry.
type LeaderboardItem struct {
	Name  string `json:"word"`
	Count int    `json:"count"`
	Rank  int    `json:"rank"`
}

func (l *Leaderboard) Type() PatternType { return PatternTypeLeaderboard }
