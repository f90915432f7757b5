package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config file names searched for, in order.
var configNames = []string{".topclust.yaml", ".topclust.yml", ".topclust.toml"}

// Layer is a partial configuration from one source. Nil fields are unset
// and leave lower-priority values in place.
type Layer struct {
	Order      *bool    `yaml:"order" toml:"order"`
	OrderBy    *string  `yaml:"order_by" toml:"order_by"`
	All        *bool    `yaml:"all" toml:"all"`
	TopN       *int     `yaml:"top_n" toml:"top_n"`
	ShowCounts *bool    `yaml:"show_counts" toml:"show_counts"`
	ShowProps  *bool    `yaml:"show_props" toml:"show_props"`
	FormatVals *bool    `yaml:"format_vals" toml:"format_vals"`
	Digits     *int     `yaml:"digits" toml:"digits"`
	Alpha      *float64 `yaml:"alpha" toml:"alpha"`
	Format     *string  `yaml:"format" toml:"format"`
	Theme      *string  `yaml:"theme" toml:"theme"`
	Debug      *bool    `yaml:"debug" toml:"debug"`
}

// LoadFile reads a config file. TOML is used for .toml files, YAML
// otherwise.
func LoadFile(path string) (Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	var l Layer
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &l); err != nil {
			return Layer{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
		return l, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Layer{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return l, nil
}

// FindConfigPath looks for a config file in the working directory, then in
// the user config directory. It returns "" when none exists.
func FindConfigPath() string {
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	configHome, err := os.UserConfigDir()
	// UserConfigDir can succeed with "/" in stripped-down environments.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	for _, name := range configNames {
		p := filepath.Join(configHome, "topclust", name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
