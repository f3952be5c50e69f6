package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nac/internal/ast"
	"nac/internal/errors"
	"nac/internal/parser"
)

var (
	parseDump     bool
	parseValidate bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print it back",
	Long: `Prints the canonical form of a file, or its syntax tree with --dump.

Examples:
  nac parse main.nac
  nac parse --dump main.nac
  nac parse --validate=false snippet.nac`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseDump, "dump", "d", false, "print the syntax tree instead of source")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", true, "reject misplaced break, continue and return")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := readSource(path)
	if err == nil {
		var program *ast.Program
		if parseValidate {
			program, err = parser.ParseAndValidate(source)
		} else {
			program, err = parser.Parse(source)
		}
		if err == nil {
			if parseDump {
				fmt.Fprintln(cmd.OutOrStdout(), ast.Dump(program))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), program.String())
			}
			return nil
		}
	}
	fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, source).FormatParseError(err))
	return errReported
}
