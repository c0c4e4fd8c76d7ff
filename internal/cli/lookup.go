package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"restaurant-finder/internal/api"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the 'search' command, a one-shot text search printed as JSON.
func NewSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search restaurants and print the results",
		Example: `  restaurant-finder search "pizza in brooklyn"
  restaurant-finder search sushi`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("query cannot be empty")
			}

			client, err := opts.lookupClient()
			if err != nil {
				return err
			}

			results := client.Search(cmd.Context(), query)
			return printJSON(cmd.OutOrStdout(), api.SearchResponse{Results: results})
		},
	}
}

// NewDetailsCmd creates the 'details' command that prints one enriched restaurant.
func NewDetailsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "details <place_id>",
		Short:   "Print the enriched record for a place",
		Example: `  restaurant-finder details ChIJN1t_tDeuEmsRUsoyG83frY4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			placeID := strings.TrimSpace(args[0])
			if placeID == "" {
				return fmt.Errorf("place_id is required")
			}

			client, err := opts.lookupClient()
			if err != nil {
				return err
			}

			restaurant, found := client.GetDetails(cmd.Context(), placeID)
			if !found {
				return fmt.Errorf("restaurant not found: %s", placeID)
			}
			return printJSON(cmd.OutOrStdout(), api.DetailsResponse{
				ID:         api.RestaurantID(placeID),
				Restaurant: restaurant,
			})
		},
	}
}

// lookupClient builds a places client whose logs go to stderr so stdout stays valid JSON.
func (o *rootOptions) lookupClient() (api.PlacesService, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	cfg.Logging.Output = "stderr"

	_, client := bootstrap(cfg)
	return client, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
