package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deal_browser/internal/transport/cli"
)

func init() {
	rootCmd.AddCommand(dealCmd)
}

var dealCmd = &cobra.Command{
	Use:   "deal <dealID>",
	Short: "Prints the details of one deal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detail, err := client.GetDealDetail(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("client.GetDealDetail: %w", err)
		}

		cli.RenderDetail(os.Stdout, detail, messages())

		return nil
	},
}
