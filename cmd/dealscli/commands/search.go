package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"deal_browser/internal/transport/cli"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of games, defaults to BROWSER_SEARCH_LIMIT.")
}

var searchLimit int //nolint:gochecknoglobals // skip

var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Searches games by title.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := searchLimit
		if limit <= 0 {
			limit = cfg.Browser.SearchLimit
		}

		games, err := client.SearchGames(cmd.Context(), strings.Join(args, " "), limit)
		if err != nil {
			return fmt.Errorf("client.SearchGames: %w", err)
		}

		if len(games) == 0 {
			fmt.Fprintln(os.Stdout, messages().NoResults)
			return nil
		}

		cli.RenderDeals(os.Stdout, games, 1, messages())

		return nil
	},
}
