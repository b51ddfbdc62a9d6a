package commands

import (
	"os"

	"github.com/spf13/cobra"

	"deal_browser/internal/transport/cli"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	addStoreFlag(browseCmd.Flags(), &browseStore)
}

var browseStore string //nolint:gochecknoglobals // skip

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse deals interactively.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repl := cli.NewRepl(client, os.Stdin, os.Stdout, messages(), cfg.Browser.SearchLimit)

		return repl.Run(cmd.Context(), browseStore)
	},
}
