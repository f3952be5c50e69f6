package cmd

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"nac/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse input interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name := "there"
		if currentUser, err := user.Current(); err == nil {
			name = currentUser.Username
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the nac REPL, %s! Type :help for commands.\n", name)
		repl.Start(os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
