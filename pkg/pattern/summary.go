package pattern

// Summary holds labelled aggregate counts.
type Summary struct {
	Label   string        `json:"label"`
	Metrics []SummaryItem `json:"metrics"`
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Key   string `json:"key"`   // stable identifier, e.g. "whitespace"
	Label string `json:"label"` // display label, e.g. "Whitespace"
	Value int    `json:"value"`
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
