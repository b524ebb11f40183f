package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/dkoosis/textsum/pkg/layout"
	"github.com/dkoosis/textsum/pkg/render"
)

// Sources recorded in Settings.Sources.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceCLI     = "cli"
)

// CliFlags holds command-line values and whether each was set explicitly.
type CliFlags struct {
	ConfigPath string
	Top        int
	Width      int
	Columns    int
	Proportion string
	Suffix     string
	Format     string
	Theme      string
	Debug      bool

	TopSet        bool
	WidthSet      bool
	ColumnsSet    bool
	ProportionSet bool
	SuffixSet     bool
	FormatSet     bool
	ThemeSet      bool
}

// Settings is the fully resolved configuration for one run.
type Settings struct {
	Top           int
	Width         int
	Columns       int
	Proportion    layout.Proportion
	Suffix        string
	Format        string
	Theme         string
	MaxInputBytes int64
	Debug         bool

	// ConfigPath is the file that was read, if any.
	ConfigPath string
	// Sources maps each setting name to where its value came from.
	Sources map[string]string
}

// Defaults returns settings built only from hardcoded defaults.
func Defaults() *Settings {
	s := &Settings{
		Top:           DefaultTop,
		Width:         DefaultWidth,
		Columns:       DefaultColumns,
		Proportion:    layout.DefaultProportion,
		Suffix:        layout.DefaultSuffix,
		Format:        DefaultFormat,
		Theme:         DefaultTheme,
		MaxInputBytes: DefaultMaxInputBytes,
		Sources:       map[string]string{},
	}
	for _, k := range []string{"top", "width", "columns", "proportion", "suffix", "format", "theme", "max_input_bytes", "debug"} {
		s.Sources[k] = SourceDefault
	}
	return s
}

// Resolve merges defaults, the config file, the environment and flags, in
// that order, then validates the result.
func Resolve(flags CliFlags) (*Settings, error) {
	s := Defaults()

	file, path, err := LoadFile(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	s.ConfigPath = path
	s.applyFile(file)

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := s.applyFlags(flags); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyFile(f *AppConfig) {
	if f.Top != 0 {
		s.set("top", SourceFile, func() { s.Top = f.Top })
	}
	if f.Width != 0 {
		s.set("width", SourceFile, func() { s.Width = f.Width })
	}
	if f.Columns != 0 {
		s.set("columns", SourceFile, func() { s.Columns = f.Columns })
	}
	if f.Proportion != nil {
		s.set("proportion", SourceFile, func() { s.Proportion = *f.Proportion })
	}
	if f.Suffix != nil {
		s.set("suffix", SourceFile, func() { s.Suffix = *f.Suffix })
	}
	if f.Format != "" {
		s.set("format", SourceFile, func() { s.Format = f.Format })
	}
	if f.Theme != "" {
		s.set("theme", SourceFile, func() { s.Theme = f.Theme })
	}
	if f.MaxInputBytes != 0 {
		s.set("max_input_bytes", SourceFile, func() { s.MaxInputBytes = f.MaxInputBytes })
	}
	if f.Debug {
		s.set("debug", SourceFile, func() { s.Debug = true })
	}
}

// applyEnv reads TEXTSUM_* variables through lookup.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		env, key string
		dst      *int
	}{
		{"TEXTSUM_TOP", "top", &s.Top},
		{"TEXTSUM_WIDTH", "width", &s.Width},
	}
	for _, e := range ints {
		v, ok := lookup(e.env)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, e.env, v)
		}
		s.set(e.key, SourceEnv, func() { *e.dst = n })
	}

	if v, ok := lookup("TEXTSUM_FORMAT"); ok && v != "" {
		s.set("format", SourceEnv, func() { s.Format = v })
	}
	if v, ok := lookup("TEXTSUM_THEME"); ok && v != "" {
		s.set("theme", SourceEnv, func() { s.Theme = v })
	}
	if v, ok := lookup("TEXTSUM_DEBUG"); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: TEXTSUM_DEBUG=%q is not a boolean", ErrInvalid, v)
		}
		s.set("debug", SourceEnv, func() { s.Debug = debug })
	}
	return nil
}

func (s *Settings) applyFlags(f CliFlags) error {
	if f.TopSet {
		s.set("top", SourceCLI, func() { s.Top = f.Top })
	}
	if f.WidthSet {
		s.set("width", SourceCLI, func() { s.Width = f.Width })
	}
	if f.ColumnsSet {
		s.set("columns", SourceCLI, func() { s.Columns = f.Columns })
	}
	if f.ProportionSet {
		p, err := layout.ParseProportion(f.Proportion)
		if err != nil {
			return err
		}
		s.set("proportion", SourceCLI, func() { s.Proportion = p })
	}
	if f.SuffixSet {
		s.set("suffix", SourceCLI, func() { s.Suffix = f.Suffix })
	}
	if f.FormatSet {
		s.set("format", SourceCLI, func() { s.Format = f.Format })
	}
	if f.ThemeSet {
		s.set("theme", SourceCLI, func() { s.Theme = f.Theme })
	}
	if f.Debug {
		s.set("debug", SourceCLI, func() { s.Debug = true })
	}
	return nil
}

func (s *Settings) set(key, source string, apply func()) {
	apply()
	s.Sources[key] = source
}

// Validate checks values that do not depend on the report geometry. Width,
// columns and suffix are checked together when the report is built.
func (s *Settings) Validate() error {
	if s.Top <= 0 {
		return fmt.Errorf("%w: top must be > 0, got %d", ErrInvalid, s.Top)
	}
	if s.Width <= 0 {
		return fmt.Errorf("%w: width must be > 0, got %d", ErrInvalid, s.Width)
	}
	if !slices.Contains(Formats, s.Format) {
		return fmt.Errorf("%w: unknown format %q (expected one of %v)", ErrInvalid, s.Format, Formats)
	}
	if themes := render.ThemeNames(); !slices.Contains(themes, s.Theme) {
		return fmt.Errorf("%w: unknown theme %q (expected one of %v)", ErrInvalid, s.Theme, themes)
	}
	if s.MaxInputBytes < 0 {
		return fmt.Errorf("%w: max_input_bytes must be >= 0, got %d", ErrInvalid, s.MaxInputBytes)
	}
	return s.Proportion.Validate()
}
