package commands

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"deal_browser/internal/domain/entity"
	"deal_browser/internal/transport/cli"
)

func init() {
	rootCmd.AddCommand(storesCmd)

	storesCmd.Flags().BoolVar(&storesAll, "all", false, "Include inactive stores.")
}

var storesAll bool //nolint:gochecknoglobals // skip

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Prints the stores deals can be filtered by.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		stores, err := client.ListStores(cmd.Context())
		if err != nil {
			return fmt.Errorf("client.ListStores: %w", err)
		}

		if !storesAll {
			stores = lo.Filter(stores, func(s entity.Store, _ int) bool { return s.Active })
		}

		cli.RenderStores(os.Stdout, stores)

		return nil
	},
}
