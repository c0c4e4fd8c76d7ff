package cli

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restaurant-finder/internal/api"
	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/observability"
	"restaurant-finder/internal/places"
	"restaurant-finder/pkg/registry"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the 'serve' command that runs the HTTP API.
func NewServeCmd(opts *rootOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Start the restaurant-finder HTTP API.

Routes:
  POST /search/       {"query": "..."}
  GET  /details/      ?place_id=...
  GET  /clear-cache/
  GET  /health, /ready, /metrics`,
		Example: `  # Listen on the configured address
  restaurant-finder serve

  # Override the port
  SERVER_PORT=9000 restaurant-finder serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, address)
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address, overrides server.address")

	return cmd
}

func runServe(opts *rootOptions, address string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	if address != "" {
		cfg.Server.Address = address
	}

	obs := observability.NewNoop()
	if cfg.Observability.MetricsEnabled {
		obs = observability.New(cfg.Observability.ServiceName)
	}
	defer obs.Shutdown()

	log, client := bootstrap(cfg, places.WithTracer(obs.Tracer()))

	reg, err := loadRegistry(cfg.Registry.Path)
	if err != nil {
		return err
	}

	server := api.NewServer(cfg.Server, api.NewHandler(client, reg, log), obs, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	log.Info("restaurant-finder started", map[string]interface{}{
		"address":  cfg.Server.Address,
		"mockMode": client.MockMode(),
		"cacheTTL": cfg.Cache.TTL().String(),
	})

	select {
	case sig := <-sigChan:
		log.Info("shutting down gracefully", map[string]interface{}{"signal": sig.String()})
		if err := server.Shutdown(config.GetDuration(cfg.Server.ShutdownTimeout)); err != nil {
			log.WithError(err).Error("shutdown failed", nil)
			return err
		}
		log.Info("shutdown complete", nil)
		return nil

	case err := <-errChan:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

// loadRegistry returns the registry file at path, or the embedded one when path is empty.
func loadRegistry(path string) (*registry.APIRegistry, error) {
	var (
		reg *registry.APIRegistry
		err error
	)
	if path == "" {
		reg, err = registry.Default()
	} else {
		reg, err = registry.LoadRegistry(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	if err := reg.Check(); err != nil {
		return nil, fmt.Errorf("registry %q: %w", path, err)
	}
	return reg, nil
}
