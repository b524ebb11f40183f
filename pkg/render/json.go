package render

import (
	"encoding/json"
	"fmt"

	"github.com/dkoosis/textsum/pkg/pattern"
)

// jsonVersion is bumped when the output shape changes.
const jsonVersion = "1"

// JSON renders patterns as structured JSON for automation.
type JSON struct {
	title string
}

// NewJSON creates a JSON renderer.
func NewJSON(title string) *JSON {
	return &JSON{title: title}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version  string                    `json:"version"`
	Title    string                    `json:"title,omitempty"`
	Distinct int                       `json:"distinct"`
	Ranking  []pattern.LeaderboardItem `json:"ranking"`
	Stats    map[string]int            `json:"stats"`
}

// Render formats all patterns as one JSON document.
func (j *JSON) Render(patterns []pattern.Pattern) (string, error) {
	board, stats := splitPatterns(patterns)

	out := jsonOutput{
		Version: jsonVersion,
		Title:   j.title,
		Ranking: []pattern.LeaderboardItem{},
		Stats:   map[string]int{},
	}
	if board != nil {
		out.Distinct = board.TotalCount
		out.Ranking = append(out.Ranking, board.Items...)
	}
	if stats != nil {
		for _, m := range stats.Metrics {
			out.Stats[m.Key] = m.Value
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}
	return string(data) + "\n", nil
}
