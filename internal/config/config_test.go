package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jack-analyzer/internal/render"
)

type file struct {
	path, contents string
}

func getFS(t *testing.T, files ...file) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f.path, []byte(f.contents), 0o644))
	}
	return fs
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, render.XML, cfg.OutputFormat())
	assert.Equal(t, 2, cfg.RenderOptions().Indent)
}

func TestLoadTOML(t *testing.T) {
	fs := getFS(t, file{"/proj/jack.toml", `
format = "json"
output_dir = "build"
emit_tokens = true
`})
	cfg, err := Load(fs, "/proj/jack.toml")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.True(t, cfg.EmitTokens)
	// untouched keys keep their defaults
	assert.Equal(t, 2, cfg.Indent)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	fs := getFS(t, file{"/jack.toml", `fromat = "json"`})
	_, err := Load(fs, "/jack.toml")
	assert.ErrorContains(t, err, "unknown key")
}

func TestLoadYAML(t *testing.T) {
	fs := getFS(t, file{"/proj/jack.yml", "format: yaml\nindent: 4\nlog_level: debug\n"})
	cfg, err := Load(fs, "/proj/jack.yml")
	require.NoError(t, err)
	assert.Equal(t, render.YAML, cfg.OutputFormat())
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	fs := getFS(t,
		file{"/bad.toml", `format = `},
		file{"/bad.yaml", "format: [unclosed"},
	)
	_, err := Load(fs, "/missing.toml")
	assert.Error(t, err)
	_, err = Load(fs, "/bad.toml")
	assert.ErrorContains(t, err, "TOML")
	_, err = Load(fs, "/bad.yaml")
	assert.ErrorContains(t, err, "YAML")
}

func TestDiscover(t *testing.T) {
	fs := getFS(t, file{"/a/jack.yaml", "format: json\n"})
	path, ok := Discover(fs, "/a")
	require.True(t, ok)
	assert.Equal(t, "/a/jack.yaml", path)

	_, ok = Discover(fs, "/b")
	assert.False(t, ok)
}

func TestResolvePrecedence(t *testing.T) {
	fs := getFS(t, file{"/proj/jack.toml", "format = \"json\"\nindent = 3\n"})
	t.Setenv("JACK_INDENT", "6")
	t.Setenv("JACK_EMIT_TOKENS", "true")

	cfg, err := Resolve(fs, "", "/proj")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 6, cfg.Indent)
	assert.True(t, cfg.EmitTokens)
}

func TestResolveExplicitPath(t *testing.T) {
	fs := getFS(t,
		file{"/proj/jack.toml", `format = "json"`},
		file{"/other.yaml", "format: yaml\n"},
	)
	cfg, err := Resolve(fs, "/other.yaml", "/proj")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestResolveInvalidEnv(t *testing.T) {
	t.Setenv("JACK_INDENT", "wide")
	_, err := Resolve(afero.NewMemMapFs(), "", "/")
	assert.ErrorContains(t, err, "environment")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "html" }},
		{"indent", func(c *Config) { c.Indent = -1 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadYAMLUnknownKey(t *testing.T) {
	fs := getFS(t, file{"/jack.yaml", "format: json\nbogus: 1\n"})
	_, err := Load(fs, "/jack.yaml")
	assert.ErrorContains(t, err, "bogus")
}

func TestLoadEmptyYAML(t *testing.T) {
	fs := getFS(t, file{"/jack.yaml", ""})
	cfg, err := Load(fs, "/jack.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolveLeavesValidationToCaller(t *testing.T) {
	t.Setenv("JACK_LOG_LEVEL", "bogus")
	cfg, err := Resolve(afero.NewMemMapFs(), "", "/")
	require.NoError(t, err)
	assert.Equal(t, "bogus", cfg.LogLevel)
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "debug"
	assert.NoError(t, cfg.Validate())
}
