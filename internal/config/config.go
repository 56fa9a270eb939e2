// Package config loads analyzer settings from a TOML or YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"jack-analyzer/internal/render"
)

// EnvPrefix is the prefix of environment overrides, e.g. JACK_FORMAT.
const EnvPrefix = "jack"

// DefaultFiles are the names Discover looks for, in order.
var DefaultFiles = []string{"jack.toml", "jack.yaml", "jack.yml"}

// Config holds analyzer settings.
type Config struct {
	// Format is the tree output format: xml, json or yaml.
	Format string `toml:"format" yaml:"format" envconfig:"format"`
	// OutputDir receives generated files; empty means next to each source.
	OutputDir string `toml:"output_dir" yaml:"output_dir" envconfig:"output_dir"`
	// Indent is the number of spaces per nesting level in output.
	Indent int `toml:"indent" yaml:"indent" envconfig:"indent"`
	// EmitTokens also writes the <Name>T.xml token file.
	EmitTokens bool `toml:"emit_tokens" yaml:"emit_tokens" envconfig:"emit_tokens"`
	// LogLevel is a logrus level name: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level" envconfig:"log_level"`
	// LogFormat is text or json.
	LogFormat string `toml:"log_format" yaml:"log_format" envconfig:"log_format"`
	// NoColor disables colored diagnostics.
	NoColor bool `toml:"no_color" yaml:"no_color" envconfig:"no_color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:    string(render.XML),
		Indent:    render.DefaultOptions.Indent,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// fileFormat is the encoding of a config file.
type fileFormat int

const (
	formatTOML fileFormat = iota
	formatYAML
)

// detectFormat determines the configuration format from the file extension.
func detectFormat(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	switch detectFormat(path) {
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
		}
	}
	return cfg, nil
}

// Discover returns the first of DefaultFiles present in dir.
func Discover(fs afero.Fs, dir string) (string, bool) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, path); ok {
			return path, true
		}
	}
	return "", false
}

// Resolve builds the effective configuration: defaults, then the file at
// path (or a discovered one in dir when path is empty), then environment
// overrides. The result is not validated: callers apply their own overrides
// first and then call Validate.
func Resolve(fs afero.Fs, path, dir string) (Config, error) {
	cfg := Default()
	if path == "" {
		path, _ = Discover(fs, dir)
	}
	if path != "" {
		var err error
		if cfg, err = Load(fs, path); err != nil {
			return cfg, err
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("environment overrides: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the analyzer cannot honor.
func (c Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// OutputFormat returns the parsed Format.
func (c Config) OutputFormat() render.Format {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.XML
	}
	return f
}

// RenderOptions returns the rendering options implied by c.
func (c Config) RenderOptions() render.Options {
	return render.Options{Indent: c.Indent}
}
