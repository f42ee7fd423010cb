package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Shop from the terminal",
		Long:          "storefront browses products, manages your cart and places orders against a storefront API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default ./.storefront.yaml)")
	pf.StringVar(&opts.apiURL, "api-url", "", "Storefront API base URL")
	pf.StringVar(&opts.storageDir, "storage-dir", "", "Directory for session and order files")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newProductCmd(opts))
	cmd.AddCommand(newCartCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newLogoutCmd(opts))
	cmd.AddCommand(newCheckoutCmd(opts))
	cmd.AddCommand(newConfirmationCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Interrupting cancels the in-flight request and its
// response is discarded.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
