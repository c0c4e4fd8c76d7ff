// Package cli holds the restaurant-finder commands.
package cli

import (
	"fmt"

	"restaurant-finder/internal/common/config"
	"restaurant-finder/internal/common/logger"
	"restaurant-finder/internal/places"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	Version = "dev"
	Commit  = "none"
)

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "restaurant-finder",
		Short: "Restaurant search and details backed by Google Places",
		Long: `restaurant-finder serves restaurant search and enriched details over HTTP.

Results come from the Google Places API when GOOGLE_MAPS_API_KEY is set and
from built-in sample data otherwise. Responses are cached in memory.`,
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file (default: configs/config.yaml)")

	cmd.AddCommand(NewServeCmd(opts))
	cmd.AddCommand(NewSearchCmd(opts))
	cmd.AddCommand(NewDetailsCmd(opts))
	cmd.AddCommand(NewRegistryCmd())

	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFromFile(o.configPath)
	}
	return config.Load()
}

// bootstrap builds the logger and places client shared by every command.
func bootstrap(cfg *config.Config, opts ...places.Option) (logger.Logger, *places.Client) {
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output).With(map[string]interface{}{
		"service": cfg.App.Name,
		"env":     cfg.App.Environment,
	})

	return log, places.NewClient(places.FromAppConfig(cfg), log, opts...)
}
