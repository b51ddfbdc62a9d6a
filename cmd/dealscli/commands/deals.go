package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/domain/service/browser"
	"deal_browser/internal/infrastructure/cheapshark"
	"deal_browser/internal/transport/cli"
)

func init() {
	rootCmd.AddCommand(dealsCmd)

	dealsCmd.Flags().IntVarP(&dealsPage, "page", "p", 0, "Page index, starting at 0.")
	addStoreFlag(dealsCmd.Flags(), &dealsStore)
	addSortFlag(dealsCmd.Flags(), &dealsSort)
}

//nolint:gochecknoglobals // skip
var (
	dealsPage  int
	dealsStore string
	dealsSort  string
)

var dealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "Prints one page of deals.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if dealsPage < 0 {
			return fmt.Errorf("page must not be negative, got %d", dealsPage)
		}

		criterion, err := entity.ParseSortCriterion(dealsSort)
		if err != nil {
			return err
		}

		deals, err := client.ListDeals(cmd.Context(), dealsPage, dealsStore)
		if err != nil {
			return fmt.Errorf("client.ListDeals: %w", err)
		}

		cli.RenderDeals(os.Stdout, browser.SortSummaries(deals, criterion), dealsPage*cheapshark.PageSize+1, messages())

		return nil
	},
}
