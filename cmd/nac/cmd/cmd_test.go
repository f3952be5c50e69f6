package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NAC_CONFIG", "")
	cfgFile, verbose, noColor = "", false, false
	tokensFormat, parseDump, parseValidate, fmtWrite = "", false, true, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTokensText(t *testing.T) {
	path := writeSource(t, "a.nac", "let x = 1\n")
	out, _, err := execute(t, "tokens", path)
	require.NoError(t, err)

	assert.Equal(t, `let "let" at 1:1
IDENTIFIER "x" at 1:5
= "=" at 1:7
NUMBER "1" at 1:9
NEWLINE at 1:10
EOF at 2:1
`, out)
}

func TestTokensYAML(t *testing.T) {
	path := writeSource(t, "a.nac", "let s = \"a\\tb\"\n")
	out, _, err := execute(t, "tokens", "--format", "yaml", path)
	require.NoError(t, err)

	var records []tokenRecord
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 6)
	assert.Equal(t, "STRING", records[3].Type)
	assert.Equal(t, `"a\tb"`, records[3].Lexeme)
	assert.Equal(t, "a\tb", records[3].Value)
	assert.Equal(t, 9, records[3].Column)
	assert.Empty(t, records[1].Value, "only strings and templates carry a value")

	_, _, err = execute(t, "tokens", "--format", "json", path)
	assert.ErrorContains(t, err, "unknown format")
}

func TestParse(t *testing.T) {
	path := writeSource(t, "f.nac", "def f( a ):\n  return a+1\n")

	out, _, err := execute(t, "parse", path)
	require.NoError(t, err)
	assert.Equal(t, "def f(a):\n    return a + 1\n", out)

	out, _, err = execute(t, "parse", "--dump", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Program(")
	assert.Contains(t, out, "Binary(Add")
}

func TestParseErrors(t *testing.T) {
	path := writeSource(t, "bad.nac", "let s = \"oops")
	_, errOut, err := execute(t, "parse", path)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "unterminated string starting on line 1")
	assert.Contains(t, errOut, path)

	loose := writeSource(t, "loose.nac", "break\n")
	_, _, err = execute(t, "parse", loose)
	assert.Error(t, err)
	out, _, err := execute(t, "parse", "--validate=false", loose)
	require.NoError(t, err)
	assert.Equal(t, "break\n", out)

	_, _, err = execute(t, "parse", filepath.Join(t.TempDir(), "missing.nac"))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	good := writeSource(t, "good.nac", "let x = 1\n")
	bad := writeSource(t, "bad.nac", "if x:\nreturn 1\n")

	out, _, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok "+good)
	assert.Contains(t, out, "Checked 1 file(s)")

	out, errOut, err := execute(t, "check", good, bad)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "ok "+good)
	assert.Contains(t, errOut, "E0106")
	assert.Contains(t, errOut, "1 of 2 file(s) failed")
}

func TestCheckSourceLimit(t *testing.T) {
	cfgPath := writeSource(t, "nac.toml", "[parse]\nmax_source_bytes = 4\n")
	path := writeSource(t, "big.nac", "let x = 1\n")

	_, errOut, err := execute(t, "check", "--config", cfgPath, path)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "E0900")
	assert.Contains(t, errOut, "source is 10 bytes, limit is 4")
}

func TestFmt(t *testing.T) {
	path := writeSource(t, "f.nac", "let x=[1,2]\n")

	out, _, err := execute(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, "let x = [1, 2]\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "let x=[1,2]\n", string(data), "fmt without --write leaves the file alone")

	out, _, err = execute(t, "fmt", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "formatted "+path)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "let x = [1, 2]\n", string(data))

	out, _, err = execute(t, "fmt", "--write", path)
	require.NoError(t, err)
	assert.Empty(t, out, "formatted files are not rewritten")
}

func TestUnknownConfig(t *testing.T) {
	_, _, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nac v"+Version)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500))
	assert.Equal(t, "1.5ms", formatDuration(1500000))
}
