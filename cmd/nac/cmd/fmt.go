package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nac/internal/errors"
	"nac/internal/parser"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>...",
	Short: "Print or rewrite files in canonical form",
	Long: `Reformats source files. Comments are not preserved.

Examples:
  nac fmt main.nac
  nac fmt --write src/*.nac`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write the result back to the file")
}

func runFmt(cmd *cobra.Command, args []string) error {
	failed := false
	for _, path := range args {
		source, err := readSource(path)
		if err == nil {
			err = formatFile(cmd, path, source)
		}
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), errors.NewErrorReporter(path, source).FormatParseError(err))
			failed = true
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func formatFile(cmd *cobra.Command, path, source string) error {
	program, err := parser.ParseAndValidate(source)
	if err != nil {
		return err
	}
	formatted := program.String()

	if !fmtWrite || path == "-" {
		fmt.Fprint(cmd.OutOrStdout(), formatted)
		return nil
	}
	if formatted == source {
		log.Debugf("%s: already formatted", path)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.CyanString("formatted"), path)
	return nil
}
