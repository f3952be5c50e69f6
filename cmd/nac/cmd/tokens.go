package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nac/internal/errors"
	"nac/internal/parser"
	"nac/token"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Long: `Prints one token per line, or a YAML list with --format yaml.

Examples:
  nac tokens main.nac
  nac tokens --format yaml main.nac
  cat main.nac | nac tokens -`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "", "output format (text, yaml; default from config)")
}

// tokenRecord is the YAML form of a token.
type tokenRecord struct {
	Type   string `yaml:"type"`
	Lexeme string `yaml:"lexeme,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	format := tokensFormat
	if format == "" {
		format = cfg.Output.Format
	}
	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	source, err := readSource(path)
	if err == nil {
		var tokens []token.Token
		tokens, err = parser.Tokenize(source)
		if err == nil {
			return writeTokens(cmd.OutOrStdout(), tokens, format)
		}
	}
	fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, source).FormatParseError(err))
	return errReported
}

func writeTokens(w io.Writer, tokens []token.Token, format string) error {
	if format == "text" {
		for _, tok := range tokens {
			fmt.Fprintln(w, tok.String())
		}
		return nil
	}

	records := make([]tokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		r := tokenRecord{
			Type:   tok.Type.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Position.Line,
			Column: tok.Position.Column,
		}
		if tok.Value != tok.Lexeme {
			r.Value = tok.Value
		}
		records = append(records, r)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode tokens: %w", err)
	}
	return enc.Close()
}
