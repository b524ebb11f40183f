// textsum prints the most common words in a text as a fixed-width report.
//
// Usage:
//
//	textsum notes.txt
//	textsum "the quick brown fox jumps over the lazy dog"
//	cat notes.txt | textsum --top 5 --width 60
//
// Output modes (auto-detected):
//
//	terminal  styled boxed report (default when stdout is a TTY)
//	plain     the same report without colour (default when piped)
//	llm       terse plain text for AI consumption
//	json      structured JSON for automation
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/textsum/internal/config"
	"github.com/dkoosis/textsum/internal/detect"
	"github.com/dkoosis/textsum/internal/logging"
	"github.com/dkoosis/textsum/internal/textstat"
	"github.com/dkoosis/textsum/internal/version"
	"github.com/dkoosis/textsum/pkg/layout"
	"github.com/dkoosis/textsum/pkg/mapper"
	"github.com/dkoosis/textsum/pkg/pattern"
	"github.com/dkoosis/textsum/pkg/rank"
	"github.com/dkoosis/textsum/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// usageError marks a failure caused by how textsum was invoked.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd := newRootCmd(stdin)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "textsum: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	var flags config.CliFlags

	cmd := &cobra.Command{
		Use:   "textsum [flags] [TEXT|FILE ...]",
		Short: "Summarise the most common words in a text",
		Long: `textsum counts the words in a text and prints the most common ones
next to simple character statistics, in a box of fixed width.

A single argument naming a file is read as that file. Any other
arguments are treated as the text itself. With no arguments the text
is read from stdin.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			flags.TopSet = f.Changed("top")
			flags.WidthSet = f.Changed("width")
			flags.ColumnsSet = f.Changed("columns")
			flags.ProportionSet = f.Changed("proportion")
			flags.SuffixSet = f.Changed("suffix")
			flags.FormatSet = f.Changed("format")
			flags.ThemeSet = f.Changed("theme")
			return summarise(cmd.OutOrStdout(), cmd.ErrOrStderr(), stdin, args, flags)
		},
	}
	cmd.SetVersionTemplate("textsum " + version.String() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	f := cmd.Flags()
	f.IntVarP(&flags.Top, "top", "n", config.DefaultTop, "number of words to rank")
	f.IntVarP(&flags.Width, "width", "w", config.DefaultWidth, "report width in terminal cells")
	f.IntVar(&flags.Columns, "columns", config.DefaultColumns, "1 for stacked sections, 2 for side by side")
	f.StringVar(&flags.Proportion, "proportion", layout.DefaultProportion.String(), "words:counts share of a two-column report")
	f.StringVar(&flags.Suffix, "suffix", layout.DefaultSuffix, "suffix marking truncated text")
	f.StringVar(&flags.Format, "format", config.DefaultFormat, "output format: "+strings.Join(config.Formats, ", "))
	f.StringVar(&flags.Theme, "theme", config.DefaultTheme, "terminal theme: "+strings.Join(render.ThemeNames(), ", "))
	f.StringVar(&flags.ConfigPath, "config", "", "config file (default ./"+config.FileName+")")
	f.BoolVar(&flags.Debug, "debug", false, "log diagnostics to stderr")
	return cmd
}

func summarise(stdout, stderr io.Writer, stdin io.Reader, args []string, flags config.CliFlags) error {
	settings, err := config.Resolve(flags)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Output = stderr
	logCfg.NoColor = !isTTYWriter(stderr)
	if settings.Debug {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)
	log := logging.Component("cli")
	log.Debug().Str("config", settings.ConfigPath).Interface("sources", settings.Sources).Msg("settings resolved")

	in, err := detect.Resolve(args, stdin, isTTYReader(stdin), settings.MaxInputBytes)
	if err != nil {
		return err
	}
	log.Debug().Stringer("source", in.Kind).Int("bytes", len(in.Text)).Msg("input resolved")

	st := textstat.Classify(in.Text)
	ranked, err := rank.Top(st.Words, settings.Top)
	if err != nil {
		return err
	}
	distinct := len(rank.Frequencies(st.Words))
	log.Debug().Int("words", st.WordCount()).Int("distinct", distinct).Int("ranked", len(ranked)).Msg("words ranked")

	patterns := mapper.FromAnalysis(ranked, distinct, st)
	renderer, box, err := selectRenderer(settings, in.Name, isTTYWriter(stdout))
	if err != nil {
		return err
	}
	if box != nil {
		logLayout(log, box, patterns)
	}

	out, err := renderer.Render(patterns)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// selectRenderer returns the renderer for the resolved format, and the Box
// behind it when the format is a boxed report.
func selectRenderer(s *config.Settings, title string, stdoutIsTTY bool) (render.Renderer, *render.Box, error) {
	switch resolveFormat(s.Format, stdoutIsTTY) {
	case "json":
		return render.NewJSON(title), nil, nil
	case "llm":
		return render.NewLLM(title), nil, nil
	}

	box, err := render.NewBox(render.BoxOptions{
		Width:      s.Width,
		Columns:    s.Columns,
		Proportion: s.Proportion,
		Suffix:     s.Suffix,
		Title:      title,
		Border:     render.DefaultBorder,
		Separator:  render.DefaultSeparator,
	})
	if err != nil {
		return nil, nil, err
	}
	if resolveFormat(s.Format, stdoutIsTTY) == "plain" {
		return box, box, nil
	}

	theme := render.ThemeByName(s.Theme)
	if os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}
	return render.NewTerminal(box, theme), box, nil
}

func resolveFormat(format string, stdoutIsTTY bool) string {
	if format != "auto" {
		return format
	}
	if stdoutIsTTY {
		return "terminal"
	}
	return "plain"
}

func logLayout(log zerolog.Logger, box *render.Box, patterns []pattern.Pattern) {
	opts := box.Options()
	ev := log.Debug().Int("width", opts.Width).Int("columns", opts.Columns)
	if opts.Columns == 2 {
		var (
			board *pattern.Leaderboard
			stats *pattern.Summary
		)
		for _, p := range patterns {
			switch v := p.(type) {
			case *pattern.Leaderboard:
				board = v
			case *pattern.Summary:
				stats = v
			}
		}
		if cols, err := box.Columns(board, stats); err == nil {
			ev = ev.Int("words_column", cols.Words).Int("counts_column", cols.Counts)
		}
	}
	ev.Msg("layout chosen")
}

// exitCode returns 2 for errors the user can fix by changing the command
// line or config, and 1 for everything else.
func exitCode(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, layout.ErrInvalidProportion),
		errors.Is(err, layout.ErrWidthTooSmall),
		errors.Is(err, render.ErrInvalidOptions),
		errors.Is(err, rank.ErrInvalidCount),
		errors.Is(err, detect.ErrNoInput):
		return 2
	default:
		return 1
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isTTYReader reports whether r is a terminal.
func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
