// Package cli implements the nexus command tree. Commands talk to the
// backend through internal/api and print human-readable tables; structured
// logs go to the log file, or to stderr with --verbose.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/app"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/config"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type CLI struct {
	configPath string
	apiURL     string
	verbose    bool

	cfg    *config.Config
	log    logger.Logger
	client *api.Client
	tokens *api.TokenStore
	out    io.Writer
}

func Execute(ctx context.Context) error {
	c := &CLI{out: os.Stdout}
	return c.newRootCmd().ExecuteContext(ctx)
}

func (c *CLI) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nexus",
		Short:         "Command line client for the B2B Nexus marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "backend base URL, overrides config")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "mirror logs to stderr")

	root.AddCommand(
		c.newAuthCmd(),
		c.newProfileCmd(),
		c.newOrdersCmd(),
		c.newProductsCmd(),
		c.newCartCmd(),
		c.newUsersCmd(),
		c.newAdminCmd(),
	)

	return root
}

func (c *CLI) setup() error {
	if c.apiURL != "" {
		os.Setenv("API_BASE_URL", c.apiURL)
	}

	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadPath(c.configPath)
	} else {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		return err
	}
	c.cfg = cfg

	opts := []logger.Option{
		logger.MaxSize(cfg.Logger.MaxSize),
		logger.MaxBackups(cfg.Logger.MaxBackups),
		logger.MaxAge(cfg.Logger.MaxAge),
	}
	if level, parseErr := zapcore.ParseLevel(cfg.Logger.Level); parseErr == nil {
		opts = append(opts, logger.SetLevel(level))
	}
	if c.verbose || cfg.Logger.Console {
		opts = append(opts, logger.Console())
	}

	log, err := logger.NewAdapter(logger.Settings{
		Filename: cfg.Logger.Filename,
		Service:  cfg.App.Name,
		Env:      cfg.Env,
	}, opts...)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	c.log = log

	container, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	c.client = container.Client
	c.tokens = container.Tokens

	if token, err := loadSession(); err == nil && token != "" {
		c.tokens.Set(token)
	}

	return nil
}
