package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nac/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file|dir>...",
	Short: "Re-check files whenever they change",
	Long: `Checks the given files, then checks them again on every save.
Directories are watched for files with one of the [watch] extensions.

Examples:
  nac watch main.nac
  nac watch src`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	w, err := watch.New(cfg, func(path string) {
		checkFile(out, errOut, path)
	})
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := w.Add(path); err != nil {
			w.Close()
			return err
		}
	}
	fmt.Fprintln(out, color.New(color.Faint).Sprint("watching for changes, press Ctrl+C to stop"))

	if err := w.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
