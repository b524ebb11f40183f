package render

import (
	"strconv"
	"strings"

	"github.com/dkoosis/textsum/pkg/pattern"
)

// LLM renders patterns as terse plain text for AI consumption and scripts.
// No boxes, no ANSI codes, one fact per line.
type LLM struct {
	title string
}

// NewLLM creates an LLM renderer. An empty title omits the SOURCE line.
func NewLLM(title string) *LLM {
	return &LLM{title: cleanTitle(title)}
}

// Render formats all patterns as plain lines.
func (l *LLM) Render(patterns []pattern.Pattern) (string, error) {
	board, stats := splitPatterns(patterns)

	var sb strings.Builder
	if l.title != "" {
		sb.WriteString("SOURCE: " + l.title + "\n")
	}
	if board != nil {
		sb.WriteString("TOP: " + strconv.Itoa(len(board.Items)) + " of " + strconv.Itoa(board.TotalCount) + " distinct\n")
		for _, item := range board.Items {
			sb.WriteString("  " + strconv.Itoa(item.Rank) + ". " + item.Name + " " + strconv.Itoa(item.Count) + "\n")
		}
	}
	if stats != nil {
		parts := make([]string, len(stats.Metrics))
		for i, m := range stats.Metrics {
			parts[i] = m.Key + "=" + strconv.Itoa(m.Value)
		}
		sb.WriteString("STATS: " + strings.Join(parts, " ") + "\n")
	}
	return sb.String(), nil
}
