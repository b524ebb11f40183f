// Package config handles configuration loading and merging for textsum.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--top, --width, --columns, --proportion, --suffix, --format, --theme)
//  2. Environment variables (TEXTSUM_TOP, TEXTSUM_WIDTH, TEXTSUM_FORMAT, TEXTSUM_THEME, TEXTSUM_DEBUG)
//  3. YAML config file (--config, else .textsum.yaml in the working directory,
//     else $XDG_CONFIG_HOME/textsum/.textsum.yaml)
//  4. Hardcoded defaults
//
// # Example .textsum.yaml
//
//	top: 12
//	width: 100
//	columns: 2
//	proportion: "3:1"
//	suffix: "~"
//	format: plain
//	theme: orca
//	max_input_bytes: 8388608
package config
