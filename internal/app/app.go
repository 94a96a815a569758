// Package app wires configuration, logging, metrics and the API client
// into a ready-to-use container for the command binaries.
package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/config"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/httpclient"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/logger"
	"github.com/Ramizraj19/B2B-nexus-sub001/pkg/metric"

	"golang.org/x/sync/errgroup"
)

type Container struct {
	Config  *config.Config
	Log     logger.Logger
	Metrics metric.Factory
	Tokens  *api.TokenStore
	Client  *api.Client
}

func New(cfg *config.Config, log logger.Logger) (*Container, error) {
	metrics := metric.NewFactory()
	tokens := api.NewTokenStore()

	httpClient, err := initHTTPClient(cfg, log, metrics, tokens)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:  cfg,
		Log:     log,
		Metrics: metrics,
		Tokens:  tokens,
		Client:  api.New(httpClient, tokens),
	}, nil
}

func initHTTPClient(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
	tokens *api.TokenStore,
) (*httpclient.Client, error) {
	client, err := httpclient.New(
		cfg.API.BaseURL,
		&http.Client{Timeout: cfg.API.Timeout},
		log.With("component", "http client"),
		metrics.HTTP(),
		metrics.Retry(),
		httpclient.UserAgent(cfg.API.UserAgent),
		httpclient.WithTokenSource(tokens.Token),
		httpclient.MaxAttempts(cfg.Retry.MaxAttempts),
		httpclient.BaseRetryDelay(cfg.Retry.BaseRetryDelay),
		httpclient.MaxRetryDelay(cfg.Retry.MaxRetryDelay),
		httpclient.SlowThreshold(cfg.Retry.SlowThreshold),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initHTTPClient: %w", err)
	}
	return client, nil
}

const _metricsShutdownTimeout = 5 * time.Second

// ServeMetrics exposes the container's Prometheus registry on the
// configured listener until ctx ends.
func ServeMetrics(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Metrics,
	metrics metric.Factory,
	log logger.Logger,
) {
	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.ServeMetrics: server listen and serve: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), _metricsShutdownTimeout)
		defer cancel()

		log.Infow("shutting down metrics server")
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app.ServeMetrics: server shutdown: %w", err)
		}
		return nil
	})
}
