package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/storefront/internal/adapters/outbound/tui"
	"github.com/openkraft/storefront/internal/domain"
)

func newCheckoutCmd(opts *globalOptions) *cobra.Command {
	var (
		form       domain.CheckoutForm
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Long:  "Show the cart summary and place the order. Guests must pass --email; signed-in users always order with their account email.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			// 1. Price the cart once; the same quote is displayed and submitted
			quote, err := a.checkout.Prepare()
			if err != nil {
				return fail(cmd, err)
			}
			if !jsonOutput {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCart(quote, a.cfg.APIURL, a.cfg.Currency))
			}

			// 2. Submit
			order, err := a.checkout.Submit(cmd.Context(), quote, form)
			if err != nil {
				return fail(cmd, err)
			}

			// 3. Confirmation view
			if jsonOutput {
				return renderJSON(cmd, order)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderConfirmation(order, a.cfg.Currency))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "Billing name")
	f.StringVar(&form.Email, "email", "", "Email (guests only)")
	f.StringVar(&form.Phone, "phone", "", "Phone number")
	f.StringVar(&form.Address, "address", "", "Delivery address")
	f.StringVar(&form.PaymentMethod, "payment", "", "Payment method: credit-card, paypal or cash-on-delivery")
	f.BoolVar(&jsonOutput, "json", false, "Output the placed order as JSON")
	return cmd
}
