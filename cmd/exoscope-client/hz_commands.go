package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exoscope/exoscope-client/pkg/selection"
)

var hzCmd = &cobra.Command{
	Use:   "hz",
	Short: "Habitable zone analysis",
	Long: `Compute habitable zone boundaries from stellar effective temperatures
using the Kopparapu et al. (2014) recent-Venus / early-Mars flux limits`,
}

var hzListCmd = &cobra.Command{
	Use:   "list",
	Short: "List planets orbiting inside their star's habitable zone",
	Long: `
Compute each star's habitable zone and list the planets whose semi-major
axis falls inside it, bounds inclusive. This view is independent of the
mass/period filters.

Examples:
  exoscope-client hz list --limit 500
  exoscope-client hz list --limit 500 --output habitable.json
`,
	RunE: runHZList,
}

var hzOutput string

func init() {
	rootCmd.AddCommand(hzCmd)
	hzCmd.AddCommand(hzListCmd)

	hzCmd.PersistentFlags().IntVar(&catalogLimit, "limit", 100, "Maximum number of rows to fetch (1-10000)")
	hzCmd.PersistentFlags().BoolVar(&catalogRefresh, "refresh", false, "Bypass the cache and fetch fresh data")
	hzListCmd.Flags().StringVar(&hzOutput, "output", "", "Write habitable records to a JSON file")
}

func runHZList(cmd *cobra.Command, args []string) error {
	records, err := fetchRecords(cmd)
	if err != nil {
		return fmt.Errorf("fetch failed, previous data (if any) remains valid: %w", err)
	}

	members := selection.SelectHabitable(records)
	if len(members) == 0 {
		fmt.Println("No planets in the habitable zone for this sample.")
		return nil
	}

	fmt.Printf("%-25s %-20s %10s %12s %12s\n", "Planet", "Host", "SMA (AU)", "HZ in (AU)", "HZ out (AU)")
	for _, m := range members {
		fmt.Printf("%-25s %-20s %10.3f %12.3f %12.3f\n",
			m.Name, m.HostName, m.SemiMajorAxisAU, m.Zone.InnerAU, m.Zone.OuterAU)
	}
	fmt.Printf("\n%d of %d planets lie within their habitable zone.\n", len(members), len(records))

	if hzOutput != "" {
		if err := writeJSON(hzOutput, members); err != nil {
			return err
		}
		fmt.Printf("Habitable records written to %s\n", hzOutput)
	}
	return nil
}
