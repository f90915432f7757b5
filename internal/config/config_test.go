package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func ptr[T any](v T) *T { return &v }

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	r, err := Resolve(Layer{}, "", env(nil))
	require.NoError(t, err)

	assert.True(t, r.Options.Order)
	assert.Equal(t, "p_adj", r.Options.OrderBy)
	assert.Equal(t, 20, r.Options.TopN)
	assert.Equal(t, 2, r.Options.Digits)
	assert.True(t, r.Options.FormatVals)
	assert.Equal(t, FormatAuto, r.Format)
	assert.Equal(t, "default", r.Theme)
	assert.Empty(t, r.ConfigPath)
	assert.Equal(t, SourceDefault, r.Sources["top_n"])
}

func TestResolve_PriorityOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".topclust.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_n: 5\ndigits: 4\norder_by: p_val\nshow_counts: true\n"), 0o600))

	r, err := Resolve(
		Layer{TopN: ptr(3)},
		path,
		env(map[string]string{"TOPCLUST_TOP_N": "7", "TOPCLUST_DIGITS": "1"}),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, r.Options.TopN)
	assert.Equal(t, SourceCLI, r.Sources["top_n"])
	assert.Equal(t, 1, r.Options.Digits)
	assert.Equal(t, SourceEnv, r.Sources["digits"])
	assert.Equal(t, "p_val", r.Options.OrderBy)
	assert.Equal(t, SourceFile, r.Sources["order_by"])
	assert.True(t, r.Options.ShowCounts)
	assert.Equal(t, SourceDefault, r.Sources["all"])
	assert.Equal(t, path, r.ConfigPath)
}

func TestResolve_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".topclust.toml")
	require.NoError(t, os.WriteFile(path, []byte("all = true\nformat_vals = false\ntheme = \"orca\"\nalpha = 0.1\n"), 0o600))

	r, err := Resolve(Layer{}, path, env(nil))
	require.NoError(t, err)
	assert.True(t, r.Options.All)
	assert.False(t, r.Options.FormatVals)
	assert.Equal(t, "orca", r.Theme)
	assert.Equal(t, 0.1, r.Alpha)
}

func TestResolve_FindsLocalThenXDG(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", filepath.Join(dir, "home"))

	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "topclust"), 0o755))
	xdgPath := filepath.Join(xdg, "topclust", ".topclust.yaml")
	require.NoError(t, os.WriteFile(xdgPath, []byte("top_n: 9\n"), 0o600))
	assert.Equal(t, xdgPath, FindConfigPath())

	require.NoError(t, os.WriteFile(".topclust.toml", []byte("top_n = 11\n"), 0o600))
	assert.Equal(t, ".topclust.toml", FindConfigPath())

	r, err := Resolve(Layer{}, "", env(nil))
	require.NoError(t, err)
	assert.Equal(t, 11, r.Options.TopN)
}

func TestResolve_NoColorForcesMono(t *testing.T) {
	r, err := Resolve(Layer{Theme: ptr("orca")}, os.DevNull, env(map[string]string{"NO_COLOR": "1"}))
	require.NoError(t, err)
	assert.True(t, r.NoColor)
	assert.Equal(t, "mono", r.Theme)
}

func TestResolve_NoColorAnyValue(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"zero still disables", map[string]string{"NO_COLOR": "0"}, true},
		{"false still disables", map[string]string{"NO_COLOR": "false"}, true},
		{"prefixed false keeps color", map[string]string{"TOPCLUST_NO_COLOR": "false"}, false},
		{"prefixed true disables", map[string]string{"TOPCLUST_NO_COLOR": "true"}, true},
		{"prefixed wins over NO_COLOR", map[string]string{"TOPCLUST_NO_COLOR": "false", "NO_COLOR": "1"}, false},
		{"unset keeps color", map[string]string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(Layer{}, os.DevNull, env(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.NoColor)
			if tt.want {
				assert.Equal(t, "mono", r.Theme)
			}
		})
	}
}

func TestResolve_Validation(t *testing.T) {
	tests := []struct {
		name string
		cli  Layer
		env  map[string]string
	}{
		{name: "zero top_n", cli: Layer{TopN: ptr(0)}},
		{name: "negative digits", cli: Layer{Digits: ptr(-1)}},
		{name: "bad format", cli: Layer{Format: ptr("xml")}},
		{name: "bad theme", cli: Layer{Theme: ptr("neon")}},
		{name: "alpha out of range", cli: Layer{Alpha: ptr(1.5)}},
		{name: "unparsable env", env: map[string]string{"TOPCLUST_TOP_N": "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cli, os.DevNull, env(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".topclust.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topn: 5\n"), 0o600))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestEnvLayer_Debug(t *testing.T) {
	l, err := EnvLayer(env(map[string]string{"TOPCLUST_DEBUG": "yes"}))
	require.NoError(t, err)
	require.NotNil(t, l.Debug)
	assert.True(t, *l.Debug)
}
