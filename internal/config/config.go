package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"nac/internal/ast"
	"nac/internal/errors"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "NAC_CONFIG"

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "nac.toml"

// Config holds the tooling configuration. The core parser takes none of it.
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Output OutputConfig `toml:"output"`
	LSP    LSPConfig    `toml:"lsp"`
	Watch  WatchConfig  `toml:"watch"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// ParseConfig limits what the tools hand to the parser
type ParseConfig struct {
	MaxSourceBytes int64 `toml:"max_source_bytes"`
}

// OutputConfig controls CLI rendering
type OutputConfig struct {
	Color  bool   `toml:"color"`
	Format string `toml:"format"`
}

// LSPConfig holds language server logging settings
type LSPConfig struct {
	LogVerbosity int    `toml:"log_verbosity"`
	LogFile      string `toml:"log_file"`
}

// WatchConfig holds `nac watch` settings
type WatchConfig struct {
	Extensions []string `toml:"extensions"`
	Debounce   Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Parse:  ParseConfig{MaxSourceBytes: 1 << 20},
		Output: OutputConfig{Color: true, Format: "text"},
		LSP:    LSPConfig{LogVerbosity: 1},
		Watch: WatchConfig{
			Extensions: []string{".nac"},
			Debounce:   Duration{100 * time.Millisecond},
		},
	}
}

// Load reads configuration from a TOML file. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Path = path

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve finds the configuration file: the explicit path first, then
// $NAC_CONFIG, then ./nac.toml. Without any of them the defaults are returned.
// An explicit path or $NAC_CONFIG that does not exist is an error.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(DefaultFile)
	}
	return Default(), nil
}

// applyDefaults fills values a file set to zero explicitly
func (c *Config) applyDefaults() {
	if c.Parse.MaxSourceBytes == 0 {
		c.Parse.MaxSourceBytes = 1 << 20
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".nac"}
	}
	for i, ext := range c.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Watch.Extensions[i] = "." + ext
		}
	}
}

func (c *Config) expandEnvVars() {
	c.LSP.LogFile = os.ExpandEnv(c.LSP.LogFile)
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"yaml\", got %q", c.Output.Format)
	}
	if c.Parse.MaxSourceBytes < 0 {
		return fmt.Errorf("parse.max_source_bytes must not be negative")
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// CheckSize rejects sources larger than parse.max_source_bytes.
func (c *Config) CheckSize(source []byte) error {
	limit := c.Parse.MaxSourceBytes
	if limit <= 0 || int64(len(source)) <= limit {
		return nil
	}
	return &errors.ParseError{
		Kind:     errors.SyntaxError,
		Message:  fmt.Sprintf("source is %d bytes, limit is %d", len(source), limit),
		Code:     errors.ErrorSourceTooLarge,
		Position: ast.Position{Line: 1, Column: 1},
	}
}

// Watches reports whether a file name has one of the watched extensions.
func (c *Config) Watches(name string) bool {
	for _, ext := range c.Watch.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
