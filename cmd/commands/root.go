package commands

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-tac-toe matchmaking server",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), statsCmd())

	return root
}

// Execute runs the command line. Without a subcommand it prints usage.
func Execute() error {
	return newRootCmd().Execute()
}
