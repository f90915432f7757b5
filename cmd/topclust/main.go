// topclust renders differential abundance (DA) and differential state (DS)
// test results as a ranked summary table.
//
// Usage:
//
//	topclust [flags] RESULTS [COUNTS]
//	topclust [flags] --combined FILE
//
// RESULTS holds one row per cluster (DA) or per cluster-marker combination
// (DS) with cluster_id, optional marker_id, p_val and p_adj columns. COUNTS
// is a cluster-by-sample count matrix whose rows follow the cluster order of
// RESULTS. Either may be TSV, CSV or JSON; "-" reads stdin. --combined reads
// a JSON object holding both under "res" and "d_counts".
//
// Output modes (auto-detected):
//
//	terminal  styled table (default when TTY)
//	llm       plain aligned text (default when piped)
//	json      structured JSON for automation
//	tsv       tab-separated rows only
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/dkoosis/topclust/internal/config"
	"github.com/dkoosis/topclust/internal/detect"
	"github.com/dkoosis/topclust/internal/logging"
	"github.com/dkoosis/topclust/internal/version"
	"github.com/dkoosis/topclust/pkg/browse"
	"github.com/dkoosis/topclust/pkg/mapper"
	"github.com/dkoosis/topclust/pkg/pattern"
	"github.com/dkoosis/topclust/pkg/render"
	"github.com/dkoosis/topclust/pkg/summarize"
	"github.com/dkoosis/topclust/pkg/tabular"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("topclust", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: topclust [flags] RESULTS [COUNTS]\n       topclust [flags] --combined FILE\n\nFlags:\n")
		fs.PrintDefaults()
	}

	topN := fs.Int("top-n", 20, "Number of rows to show")
	all := fs.Bool("all", false, "Show every row")
	order := fs.Bool("order", true, "Sort rows ascending by --order-by")
	orderBy := fs.String("order-by", "p_adj", "Column to sort by")
	showCounts := fs.Bool("show-counts", false, "Append counts_<sample> columns (needs COUNTS)")
	showProps := fs.Bool("show-props", false, "Append props_<sample> percentage columns (needs COUNTS)")
	formatVals := fs.Bool("format-vals", true, "Show p_val and p_adj in scientific notation")
	digits := fs.Int("digits", 2, "Digits after the decimal point for --format-vals")
	alpha := fs.Float64("alpha", 0.05, "Highlight rows with p_adj below this (0 disables)")
	formatFlag := fs.String("format", config.FormatAuto, "Output format: auto, terminal, llm, json, tsv")
	themeFlag := fs.String("theme", "default", "Theme: default, orca, mono")
	debug := fs.Bool("debug", false, "Log diagnostics to stderr")
	combined := fs.String("combined", "", "JSON file holding both results and counts")
	configPath := fs.String("config", "", "Config file (default: search .topclust.yaml/.toml)")
	browseFlag := fs.Bool("browse", false, "Scroll the rendered table interactively")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	// Only flags given on the command line override file and environment.
	var cli config.Layer
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top-n":
			cli.TopN = topN
		case "all":
			cli.All = all
		case "order":
			cli.Order = order
		case "order-by":
			cli.OrderBy = orderBy
		case "show-counts":
			cli.ShowCounts = showCounts
		case "show-props":
			cli.ShowProps = showProps
		case "format-vals":
			cli.FormatVals = formatVals
		case "digits":
			cli.Digits = digits
		case "alpha":
			cli.Alpha = alpha
		case "format":
			cli.Format = formatFlag
		case "theme":
			cli.Theme = themeFlag
		case "debug":
			cli.Debug = debug
		}
	})

	cfg, err := config.Resolve(cli, *configPath, os.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "topclust: %v\n", err)
		return 2
	}
	log := logging.New(stderr, cfg.Debug)
	log.Debug().
		Str("config", cfg.ConfigPath).
		Interface("sources", cfg.Sources).
		Interface("options", cfg.Options).
		Msg("resolved configuration")

	in, code := readInput(fs.Args(), *combined, stdin, stderr, log)
	if code >= 0 {
		return code
	}

	mode := resolveFormat(cfg.Format, stdout)
	start := time.Now()
	tbl, err := summarize.Summarize(in, cfg.Options)
	if err != nil {
		fmt.Fprintf(stderr, "topclust: %v\n", err)
		if mode == render.ModeJSON {
			fmt.Fprint(stdout, render.NewJSON().Render(mapper.FromError("summarize", err)))
		}
		return 1
	}
	log.Debug().
		Str("kind", tbl.Kind().Short()).
		Int("rows", tbl.Len()).
		Int("total", tbl.Total()).
		Strs("columns", tbl.Columns()).
		Dur("elapsed", time.Since(start)).
		Msg("summarized")

	meta := mapper.Meta{Alpha: cfg.Alpha}
	if cfg.Options.Order {
		meta.OrderBy = cfg.Options.OrderBy
	}
	patterns := mapper.FromTable(tbl, meta)

	width, _ := termSize(stdout)
	output := render.New(mode, render.ThemeByName(cfg.Theme), width).Render(patterns)

	if *browseFlag {
		if isTTYWriter(stdout) {
			return runBrowse(patterns, output, stdout, stderr)
		}
		log.Warn().Msg("--browse needs a terminal on stdout; printing instead")
	}
	fmt.Fprint(stdout, output)
	return 0
}

// readInput loads the tables named on the command line.
// Returns (input, -1) on success; (nil, exitCode) on error.
func readInput(args []string, combinedPath string, stdin io.Reader, stderr io.Writer, log zerolog.Logger) (summarize.Input, int) {
	if combinedPath != "" {
		if len(args) > 0 {
			fmt.Fprintf(stderr, "topclust: --combined takes no positional arguments\n")
			return nil, 2
		}
		data, err := readSource(combinedPath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "topclust: reading %s: %v\n", combinedPath, err)
			return nil, 2
		}
		wrapper, err := tabular.ReadCombined(data)
		if err != nil {
			fmt.Fprintf(stderr, "topclust: parsing %s: %v\n", combinedPath, err)
			return nil, 2
		}
		log.Debug().Str("path", combinedPath).Int("results", wrapper.Res.Len()).Int("clusters", wrapper.Counts.Len()).Msg("read combined input")
		return summarize.Combined{Wrapper: wrapper}, -1
	}

	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(stderr, "topclust: expected RESULTS [COUNTS] or --combined FILE\n")
		return nil, 2
	}
	if len(args) == 2 && args[0] == "-" && args[1] == "-" {
		fmt.Fprintf(stderr, "topclust: only one input can be read from stdin\n")
		return nil, 2
	}

	// Results and counts are independent files; read them concurrently.
	raw := make([][]byte, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			b, err := readSource(path, stdin)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			raw[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(stderr, "topclust: %v\n", err)
		return nil, 2
	}

	data := raw[0]
	format := detect.Sniff(data)
	log.Debug().Str("path", args[0]).Stringer("format", format).Msg("read results")

	// A combined document passed positionally behaves like --combined.
	if format == detect.CombinedJSON && len(args) == 1 {
		wrapper, err := tabular.ReadCombined(data)
		if err != nil {
			fmt.Fprintf(stderr, "topclust: parsing %s: %v\n", args[0], err)
			return nil, 2
		}
		return summarize.Combined{Wrapper: wrapper}, -1
	}

	results, err := tabular.ReadResults(data, format)
	if err != nil {
		fmt.Fprintf(stderr, "topclust: parsing %s: %v\n", args[0], err)
		return nil, 2
	}
	in := summarize.Separate{Results: results}
	if len(args) == 2 {
		counts, err := tabular.ReadCounts(raw[1], detect.Unknown)
		if err != nil {
			fmt.Fprintf(stderr, "topclust: parsing %s: %v\n", args[1], err)
			return nil, 2
		}
		log.Debug().Str("path", args[1]).Int("clusters", counts.Len()).Int("samples", len(counts.Samples)).Msg("read counts")
		in.Counts = counts
	}
	return in, -1
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// runBrowse shows the rendered output in a scrollable view.
func runBrowse(patterns []pattern.Pattern, output string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	title := "topclust"
	if len(patterns) > 0 {
		if s, ok := patterns[0].(*pattern.Summary); ok {
			title = s.Label
		}
	}
	if err := browse.Run(ctx, title, output, nil, stdout); err != nil {
		fmt.Fprintf(stderr, "topclust: %v\n", err)
		return 1
	}
	return 0
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return render.ModeTerminal
	}
	return render.ModeLLM
}
