package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nac/internal/errors"
	"nac/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate source files",
	Long: `Parses and validates each file and reports its first error.

Examples:
  nac check main.nac
  nac check src/*.nac`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	failed := 0
	for _, path := range args {
		if !checkFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), path) {
			failed++
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%d of %d file(s) failed after %s\n", failed, len(args), duration)
		return errReported
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Checked %d file(s) in %s\n", len(args), duration)
	return nil
}

// checkFile reports whether path parses and validates. Diagnostics go to
// errOut, the status line to out.
func checkFile(out, errOut io.Writer, path string) bool {
	source, err := readSource(path)
	if err == nil {
		_, err = parser.ParseAndValidate(source)
	}
	if err != nil {
		fmt.Fprint(errOut, errors.NewErrorReporter(path, source).FormatParseError(err))
		return false
	}

	log.Debugf("%s: ok", path)
	fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), path)
	return true
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
