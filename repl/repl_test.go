package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func run(input string) string {
	var out bytes.Buffer
	Start(strings.NewReader(input), &out)
	return out.String()
}

func TestStartSourceMode(t *testing.T) {
	out := run("let x = 1+2\n")
	assert.Equal(t, ">> let x = 1 + 2\n>> ", out)
}

func TestStartBlocks(t *testing.T) {
	out := run("def f( a ):\n    return a\n\nlet y = 2\n")
	assert.Equal(t, ">> .. .. def f(a):\n    return a\n>> let y = 2\n>> ", out)

	// open brackets continue too
	out = run("let xs = [1,\n  2]\n\n")
	assert.Contains(t, out, "let xs = [1, 2]\n")

	// input ending inside a block still gets evaluated
	out = run("while x:\n    pass\n")
	assert.True(t, strings.HasSuffix(out, "\nwhile x:\n    pass\n"), out)
}

func TestStartModes(t *testing.T) {
	out := run(":dump\n1 * 2\n:tokens\nx\n:source\nx\n")
	assert.Contains(t, out, "Binary(Multiply")
	assert.Contains(t, out, `IDENTIFIER "x" at 1:1`)
	assert.Contains(t, out, "EOF at 2:1")
	assert.True(t, strings.HasSuffix(out, ">> x\n>> "), out)
}

func TestStartErrors(t *testing.T) {
	out := run("let s = \"oops\nbreak\n")
	assert.Contains(t, out, "unterminated string starting on line 1")
	assert.Contains(t, out, "'break' outside loop")
	assert.Contains(t, out, "<repl>:1:1")
}

func TestStartQuit(t *testing.T) {
	out := run(":help\n:quit\nlet never = 1\n")
	assert.Contains(t, out, ":tokens   print the token stream")
	assert.NotContains(t, out, "never")
}
