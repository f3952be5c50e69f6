// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"nac/internal/ast"
	"nac/internal/errors"
	"nac/internal/parser"
)

const (
	PROMPT          = ">> "
	CONTINUE_PROMPT = ".. "
)

// Mode selects what is printed for each parsed input.
type Mode int

const (
	ModeSource Mode = iota // canonical source
	ModeDump               // constructor form
	ModeTokens             // token stream
)

const help = `:source   print the canonical form (default)
:dump     print the syntax tree
:tokens   print the token stream
:quit     leave
Lines ending in ':' open a block; finish it with an empty line.
`

// Start reads programs from in until it is exhausted or :quit is entered.
// Nothing is evaluated; each input is parsed, validated and printed back.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	mode := ModeSource
	var pending []string

	for {
		if len(pending) == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUE_PROMPT)
		}
		if !scanner.Scan() {
			if len(pending) > 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, eval(strings.Join(pending, "\n")+"\n", mode))
			}
			return
		}
		line := scanner.Text()

		if len(pending) == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit", ":q":
				return
			case ":help":
				fmt.Fprint(out, help)
				continue
			case ":source":
				mode = ModeSource
				continue
			case ":dump":
				mode = ModeDump
				continue
			case ":tokens":
				mode = ModeTokens
				continue
			}
		}

		if len(pending) > 0 && strings.TrimSpace(line) == "" {
			fmt.Fprint(out, eval(strings.Join(pending, "\n")+"\n", mode))
			pending = nil
			continue
		}

		pending = append(pending, line)
		if len(pending) == 1 && !needsMore(line) {
			fmt.Fprint(out, eval(line+"\n", mode))
			pending = nil
		}
	}
}

// needsMore reports whether a first line cannot stand on its own.
func needsMore(line string) bool {
	if strings.HasSuffix(strings.TrimSpace(line), ":") {
		return true
	}
	_, err := parser.Parse(line)
	if pe, ok := errors.AsParseError(err); ok {
		return pe.Kind == errors.UnexpectedEOF
	}
	return false
}

func eval(source string, mode Mode) string {
	reporter := errors.NewErrorReporter("<repl>", source)

	if mode == ModeTokens {
		tokens, err := parser.Tokenize(source)
		if err != nil {
			return reporter.FormatParseError(err)
		}
		var b strings.Builder
		for _, tok := range tokens {
			b.WriteString(tok.String())
			b.WriteString("\n")
		}
		return b.String()
	}

	program, err := parser.ParseAndValidate(source)
	if err != nil {
		return reporter.FormatParseError(err)
	}
	if mode == ModeDump {
		return ast.Dump(program) + "\n"
	}
	return program.String()
}
