package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"nac/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
	log = commonlog.GetLogger("nac.cli")
)

// errReported signals a failure whose diagnostics were already printed.
var errReported = stderrors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:   "nac",
	Short: "nac - parser front end for the nac language",
	Long: `nac tokenizes, parses and validates nac source files.

Commands:
  tokens  - print the token stream
  parse   - print the canonical form or the syntax tree
  check   - validate files and report the first error of each
  fmt     - rewrite files in canonical form
  watch   - re-check files whenever they change
  repl    - parse interactively`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !stderrors.Is(err, errReported) {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $NAC_CONFIG or ./nac.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	verbosity := 0
	if verbose {
		verbosity = 4
	}
	commonlog.Configure(verbosity, nil)

	var err error
	cfg, err = config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	if noColor || !cfg.Output.Color {
		color.NoColor = true
	}
	if cfg.Path != "" {
		log.Debugf("using config %s", cfg.Path)
	}
	return nil
}

// readSource loads a file, or stdin for "-", and applies the size limit.
func readSource(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if err := cfg.CheckSize(data); err != nil {
		return "", err
	}
	return string(data), nil
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(w, "%s: %v\n", red("error"), err)
}
