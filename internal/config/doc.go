// Package config handles configuration loading and merging for topclust.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--top-n, --order-by, --digits, --format, --theme, etc.)
//  2. Environment variables (TOPCLUST_TOP_N, TOPCLUST_ORDER_BY, NO_COLOR, ...)
//  3. Config file (.topclust.yaml or .topclust.toml in the working directory,
//     or under $XDG_CONFIG_HOME/topclust/)
//  4. Hardcoded defaults (table.DefaultOptions)
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Keys
//
// The same key names are used in the config file and, upper-cased with a
// TOPCLUST_ prefix, in the environment:
//
//   - order, order_by, all, top_n: row ordering and truncation
//   - show_counts, show_props: append per-sample count/percentage columns
//   - format_vals, digits: scientific notation for p_val and p_adj
//   - alpha: rows with p_adj below this are highlighted (0 disables)
//   - format: auto, terminal, llm, json, tsv
//   - theme: default, orca, mono
//   - debug: verbose logging to stderr
//
// NO_COLOR (or TOPCLUST_NO_COLOR) forces the mono theme.
package config
