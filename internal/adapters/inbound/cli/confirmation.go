package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/storefront/internal/adapters/outbound/tui"
)

func newConfirmationCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "confirmation",
		Aliases: []string{"thank-you"},
		Short:   "Show the most recent order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			order, ok := a.confirmations.Load()
			if jsonOutput {
				if !ok {
					return renderJSON(cmd, map[string]any{"order": nil})
				}
				return renderJSON(cmd, map[string]any{"order": order})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderConfirmation(order, a.cfg.Currency))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the order as JSON")
	return cmd
}
