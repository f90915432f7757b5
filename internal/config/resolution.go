package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkoosis/topclust/pkg/render"
	"github.com/dkoosis/topclust/pkg/table"
)

// Sources recorded in Resolved.Sources.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// FormatAuto picks terminal output for a TTY and llm output otherwise.
const FormatAuto = "auto"

const envPrefix = "TOPCLUST_"

// Resolved holds the final configuration after applying all priority rules.
type Resolved struct {
	Options table.Options
	Alpha   float64
	Format  string
	Theme   string
	NoColor bool
	Debug   bool

	// Resolution metadata (for debugging)
	ConfigPath string
	Sources    map[string]string // key -> SourceCLI, SourceEnv, SourceFile, or SourceDefault
}

// Resolve merges defaults, the config file at configPath (searched for when
// empty), the environment read through getenv, and cli, in increasing
// priority.
func Resolve(cli Layer, configPath string, getenv func(string) string) (*Resolved, error) {
	r := &Resolved{
		Options: table.DefaultOptions(),
		Alpha:   0.05,
		Format:  FormatAuto,
		Theme:   "default",
		Sources: map[string]string{},
	}
	for _, k := range keys {
		r.Sources[k] = SourceDefault
	}

	if configPath == "" {
		configPath = FindConfigPath()
	}
	if configPath != "" {
		file, err := LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		r.ConfigPath = configPath
		r.apply(file, SourceFile)
	}

	env, err := EnvLayer(getenv)
	if err != nil {
		return nil, err
	}
	r.apply(env, SourceEnv)
	r.apply(cli, SourceCLI)

	if b := envBool(getenv, envPrefix+"NO_COLOR", "NO_COLOR"); b != nil {
		r.NoColor = *b
	}
	if r.NoColor {
		r.Theme = "mono"
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

var keys = []string{
	"order", "order_by", "all", "top_n", "show_counts", "show_props",
	"format_vals", "digits", "alpha", "format", "theme", "debug",
}

func (r *Resolved) apply(l Layer, src string) {
	set(&r.Options.Order, l.Order, "order", src, r.Sources)
	set(&r.Options.OrderBy, l.OrderBy, "order_by", src, r.Sources)
	set(&r.Options.All, l.All, "all", src, r.Sources)
	set(&r.Options.TopN, l.TopN, "top_n", src, r.Sources)
	set(&r.Options.ShowCounts, l.ShowCounts, "show_counts", src, r.Sources)
	set(&r.Options.ShowProps, l.ShowProps, "show_props", src, r.Sources)
	set(&r.Options.FormatVals, l.FormatVals, "format_vals", src, r.Sources)
	set(&r.Options.Digits, l.Digits, "digits", src, r.Sources)
	set(&r.Alpha, l.Alpha, "alpha", src, r.Sources)
	set(&r.Format, l.Format, "format", src, r.Sources)
	set(&r.Theme, l.Theme, "theme", src, r.Sources)
	set(&r.Debug, l.Debug, "debug", src, r.Sources)
}

func set[T any](dst *T, v *T, key, src string, sources map[string]string) {
	if v == nil {
		return
	}
	*dst = *v
	sources[key] = src
}

// EnvLayer reads TOPCLUST_<KEY> variables. TOPCLUST_DEBUG enables debug
// output for any non-empty value other than a false boolean.
func EnvLayer(getenv func(string) string) (Layer, error) {
	var l Layer
	var err error
	parse := func(key string, fn func(string) error) {
		if err != nil {
			return
		}
		name := envPrefix + strings.ToUpper(key)
		if v := getenv(name); v != "" {
			if perr := fn(v); perr != nil {
				err = fmt.Errorf("%s=%q: %w", name, v, perr)
			}
		}
	}
	boolVar := func(dst **bool) func(string) error {
		return func(s string) error {
			b, perr := strconv.ParseBool(s)
			*dst = &b
			return perr
		}
	}
	intVar := func(dst **int) func(string) error {
		return func(s string) error {
			n, perr := strconv.Atoi(s)
			*dst = &n
			return perr
		}
	}
	strVar := func(dst **string) func(string) error {
		return func(s string) error {
			*dst = &s
			return nil
		}
	}

	parse("order", boolVar(&l.Order))
	parse("order_by", strVar(&l.OrderBy))
	parse("all", boolVar(&l.All))
	parse("top_n", intVar(&l.TopN))
	parse("show_counts", boolVar(&l.ShowCounts))
	parse("show_props", boolVar(&l.ShowProps))
	parse("format_vals", boolVar(&l.FormatVals))
	parse("digits", intVar(&l.Digits))
	parse("alpha", func(s string) error {
		f, perr := strconv.ParseFloat(s, 64)
		l.Alpha = &f
		return perr
	})
	parse("format", strVar(&l.Format))
	parse("theme", strVar(&l.Theme))
	parse("debug", func(s string) error {
		b, perr := strconv.ParseBool(s)
		if perr != nil {
			b = true
		}
		l.Debug = &b
		return nil
	})
	if err != nil {
		return Layer{}, err
	}
	return l, nil
}

// envBool reads a boolean from environment variables, trying multiple keys.
// NO_COLOR follows no-color.org: any non-empty value, even "0" or "false",
// disables color. Other keys must parse as booleans. Returns nil if none are
// set.
func envBool(getenv func(string) string, keys ...string) *bool {
	for _, key := range keys {
		val := getenv(key)
		if val == "" {
			continue
		}
		b := true
		if key != "NO_COLOR" {
			parsed, err := strconv.ParseBool(val)
			if err != nil {
				continue
			}
			b = parsed
		}
		return &b
	}
	return nil
}

func (r *Resolved) validate() error {
	if err := r.Options.Validate(); err != nil {
		return err
	}
	if r.Alpha < 0 || r.Alpha >= 1 {
		return fmt.Errorf("alpha must be in [0, 1), got %v", r.Alpha)
	}
	if r.Format != FormatAuto && !render.ValidMode(r.Format) {
		return fmt.Errorf("invalid format %q (must be: auto, %s)", r.Format, strings.Join(render.Modes(), ", "))
	}
	validTheme := false
	for _, name := range render.ThemeNames() {
		if r.Theme == name {
			validTheme = true
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme %q (must be: %s)", r.Theme, strings.Join(render.ThemeNames(), ", "))
	}
	return nil
}
