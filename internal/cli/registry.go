package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"restaurant-finder/pkg/registry"

	"github.com/spf13/cobra"
)

// NewRegistryCmd creates the 'registry' command group for the API endpoint registry.
func NewRegistryCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect and validate the API endpoint registry",
		Long: `The registry describes every HTTP endpoint with its JSON input schema.
Requests are validated against it. Without --path the registry compiled into
the binary is used.`,
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "registry file (default: embedded registry)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(path)
			if err != nil {
				return err
			}
			return listEndpoints(cmd.OutOrStdout(), reg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check every schema compiles and endpoint ids are unique",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(path)
			if err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}
			if len(reg.Endpoints) == 0 {
				return fmt.Errorf("registry validation failed: registry contains no endpoints")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d endpoints.\n", len(reg.Endpoints))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "export <file>",
		Short:   "Write the embedded registry to a file for customisation",
		Example: `  restaurant-finder registry export configs/registry.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Default()
			if err != nil {
				return err
			}
			reg.LastUpdated = time.Now().Format("2006-01-02")
			if err := saveRegistry(reg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d endpoints to %s\n", len(reg.Endpoints), args[0])
			return nil
		},
	})

	return cmd
}

func listEndpoints(w io.Writer, reg *registry.APIRegistry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMETHOD\tPATH\tERRORS")
	for _, ep := range reg.Endpoints {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ep.ID, ep.Method, ep.Path, strings.Join(ep.ErrorCodes, ","))
	}
	return tw.Flush()
}

func saveRegistry(reg *registry.APIRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}
