package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/openkraft/storefront/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the storefront MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront MCP server (stdio)",
		Long:  "Start the storefront MCP server using stdio transport so AI assistants can browse products, manage the cart and place orders.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return fail(cmd, err)
			}
			defer a.close()

			s := mcpadapter.NewStorefrontMCPServer(mcpadapter.Services{
				Store:         a.store,
				Products:      a.products,
				Checkout:      a.checkout,
				Confirmations: a.confirmations,
				BaseURL:       a.cfg.APIURL,
			}, version)
			return server.ServeStdio(s)
		},
	}
}
