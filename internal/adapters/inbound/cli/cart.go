package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/storefront/internal/adapters/outbound/tui"
	"github.com/openkraft/storefront/internal/domain"
)

func newCartCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart",
		Long:  "Add, list and remove cart items. Guests keep a local cart; signed-in users' additions are saved to the server first.",
	}
	cmd.AddCommand(newCartAddCmd(opts))
	cmd.AddCommand(newCartShowCmd(opts))
	cmd.AddCommand(newCartRemoveCmd(opts))
	cmd.AddCommand(newCartClearCmd(opts))
	return cmd
}

func newCartAddCmd(opts *globalOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			item, err := a.products.AddToCart(cmd.Context(), domain.ID(args[0]), quantity)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAdded(item))
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity to add (minimum 1)")
	return cmd
}

func newCartShowCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart and its total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			quote, err := a.checkout.Prepare()
			if errors.Is(err, domain.ErrEmptyCart) {
				if jsonOutput {
					return renderJSON(cmd, a.store.Snapshot())
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderEmptyCart())
				return nil
			}
			if err != nil {
				return fail(cmd, err)
			}

			if jsonOutput {
				return renderJSON(cmd, quote)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCart(quote, a.cfg.APIURL, a.cfg.Currency))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output cart as JSON")
	return cmd
}

func newCartRemoveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			removed, err := a.store.Remove(domain.ID(args[0]))
			if err != nil {
				return fail(cmd, err)
			}
			if !removed {
				return fail(cmd, domain.NewNotFoundError(fmt.Sprintf("product %s is not in your cart", args[0])))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newCartClearCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			if err := a.store.ClearCart(a.store.Identity().Kind()); err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}
