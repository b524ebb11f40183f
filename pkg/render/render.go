// Package render turns textsum patterns into output: a fixed-width boxed
// report (plain or styled), terse plain text, or JSON.
package render

import "github.com/dkoosis/textsum/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) (string, error)
}
