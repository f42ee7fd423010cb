package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openkraft/storefront/internal/adapters/outbound/api"
	"github.com/openkraft/storefront/internal/adapters/outbound/config"
	"github.com/openkraft/storefront/internal/adapters/outbound/confirmation"
	"github.com/openkraft/storefront/internal/adapters/outbound/logging"
	"github.com/openkraft/storefront/internal/adapters/outbound/session"
	"github.com/openkraft/storefront/internal/adapters/outbound/tui"
	"github.com/openkraft/storefront/internal/application"
	"github.com/openkraft/storefront/internal/domain"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	apiURL     string
	storageDir string
	verbose    bool
}

// app is the wired set of adapters and services for one command run.
type app struct {
	cfg           domain.Config
	logger        *zap.Logger
	store         *application.Store
	products      *application.ProductService
	checkout      *application.CheckoutService
	confirmations *application.ConfirmationService
}

func (o *globalOptions) loadConfig() (domain.Config, error) {
	cfg, err := config.New().Load(o.configPath)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	if o.storageDir != "" {
		cfg.StorageDir = o.storageDir
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o *globalOptions) build(cmd *cobra.Command) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), o.verbose)
	client := api.New(cfg.APIURL, cfg.Timeout(), logger.Named("api"))

	store, err := application.OpenStore(session.New(cfg.StorageDir), logger)
	if err != nil {
		return nil, err
	}
	confirmations := confirmation.New(cfg.StorageDir)

	return &app{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		products:      application.NewProductService(client, client, store, cfg.Timeout(), logger.Named("products")),
		checkout:      application.NewCheckoutService(store, client, confirmations, cfg.Timeout(), logger.Named("checkout")),
		confirmations: application.NewConfirmationService(confirmations, logger.Named("confirmation")),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// fail prints err for the user and returns it so the process exits non-zero.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), tui.RenderError(err))
	return err
}
