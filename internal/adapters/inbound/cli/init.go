package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openkraft/storefront/internal/adapters/outbound/config"
	"github.com/openkraft/storefront/internal/domain"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var (
		currency string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a " + config.DefaultFileName + " configuration file",
		Long:  "Create a " + config.DefaultFileName + " pointing at your storefront API. --api-url and --storage-dir are written into the file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.DefaultFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultFileName)
				}
			}

			cfg := domain.DefaultConfig()
			if opts.apiURL != "" {
				cfg.APIURL = opts.apiURL
			}
			cfg.StorageDir = opts.storageDir
			if currency != "" {
				cfg.Currency = currency
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}
			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.DefaultFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", domain.DefaultCurrency, "Currency code shown next to prices")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.DefaultFileName)

	return cmd
}

func generateConfig(cfg domain.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	header := "# storefront configuration\n" +
		"# Environment overrides: STOREFRONT_API_URL, STOREFRONT_STORAGE_DIR,\n" +
		"# STOREFRONT_CURRENCY, STOREFRONT_REQUEST_TIMEOUT (also read from .env)\n\n"
	return append([]byte(header), data...), nil
}
