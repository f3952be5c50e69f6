package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nac/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nac.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, int64(1<<20), cfg.Parse.MaxSourceBytes)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 1, cfg.LSP.LogVerbosity)
	assert.Equal(t, []string{".nac"}, cfg.Watch.Extensions)
	assert.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("NAC_TEST_LOGS", "/var/log/nac")
	path := writeConfig(t, `
[parse]
max_source_bytes = 2048

[output]
color = false
format = "yaml"

[lsp]
log_verbosity = 3
log_file = "$NAC_TEST_LOGS/lsp.log"

[watch]
extensions = ["nac", ".nx"]
debounce = "250ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, int64(2048), cfg.Parse.MaxSourceBytes)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 3, cfg.LSP.LogVerbosity)
	assert.Equal(t, "/var/log/nac/lsp.log", cfg.LSP.LogFile)
	assert.Equal(t, []string{".nac", ".nx"}, cfg.Watch.Extensions)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce.Duration)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[lsp]\nlog_verbosity = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.LSP.LogVerbosity)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, int64(1<<20), cfg.Parse.MaxSourceBytes)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")

	_, err = Load(writeConfig(t, "[parse\n"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = Load(writeConfig(t, "[output]\nformat = \"json\"\n"))
	assert.ErrorContains(t, err, "output.format")

	_, err = Load(writeConfig(t, "[watch]\ndebounce = \"soon\"\n"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(EnvVar, "")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Path, "no file anywhere yields defaults")

	require.NoError(t, os.WriteFile(DefaultFile, []byte("[lsp]\nlog_verbosity = 4\n"), 0o644))
	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.LSP.LogVerbosity)

	fromEnv := writeConfig(t, "[lsp]\nlog_verbosity = 5\n")
	t.Setenv(EnvVar, fromEnv)
	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.LSP.LogVerbosity)

	explicit := writeConfig(t, "[lsp]\nlog_verbosity = 6\n")
	cfg, err = Resolve(explicit)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.LSP.LogVerbosity)

	_, err = Resolve(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestCheckSize(t *testing.T) {
	cfg := Default()
	cfg.Parse.MaxSourceBytes = 4

	assert.NoError(t, cfg.CheckSize([]byte("abcd")))

	err := cfg.CheckSize([]byte("abcde"))
	require.Error(t, err)
	pe, ok := errors.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorSourceTooLarge, pe.DiagnosticCode())
	assert.Equal(t, "source is 5 bytes, limit is 4 at 1:1", err.Error())

	cfg.Parse.MaxSourceBytes = 0
	assert.NoError(t, cfg.CheckSize(make([]byte, 1<<21)))
}

func TestWatches(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Watches("src/main.nac"))
	assert.False(t, cfg.Watches("README.md"))
}
