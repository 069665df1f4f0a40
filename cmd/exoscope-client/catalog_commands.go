package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/analysis"
	"github.com/exoscope/exoscope-client/pkg/astronomy/radialvelocity"
	"github.com/exoscope/exoscope-client/pkg/selection"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Fetch and filter exoplanet archive data",
	Long:  `Query the NASA Exoplanet Archive for confirmed planets and apply filters`,
}

var catalogFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch planet records from the exoplanet archive",
	Long: `
Fetch up to --limit confirmed-planet rows, sorted by ascending orbital
period. Rows missing mass, period, semi-major axis, or stellar mass are
dropped. Results are cached for the configured TTL.

Examples:
  # Fetch ten planets (served from cache when fresh)
  exoscope-client catalog fetch --limit 10

  # Force a fresh fetch past the cache
  exoscope-client catalog fetch --limit 100 --refresh

  # Write the records as JSON
  exoscope-client catalog fetch --limit 50 --output planets.json
`,
	RunE: runCatalogFetch,
}

var catalogFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter fetched planets by mass and period ranges",
	Long: `
Apply closed-interval mass and period filters over the fetched records and
print each match with its radial velocity amplitude. The eccentricity value
is applied uniformly to every amplitude computation.

Examples:
  # Earth-to-super-Earth planets with periods within a year
  exoscope-client catalog filter --limit 200 --min-mass 0.5 --max-mass 10 --max-period 365

  # Same filter assuming mildly eccentric orbits
  exoscope-client catalog filter --limit 200 --min-mass 0.5 --max-mass 10 --ecc 0.3
`,
	RunE: runCatalogFilter,
}

var (
	catalogLimit   int
	catalogRefresh bool
	catalogOutput  string

	filterMinMass   float64
	filterMaxMass   float64
	filterMinPeriod float64
	filterMaxPeriod float64
	filterEcc       float64
)

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogFetchCmd)
	catalogCmd.AddCommand(catalogFilterCmd)

	catalogCmd.PersistentFlags().IntVar(&catalogLimit, "limit", 10, "Maximum number of rows to fetch (1-10000)")
	catalogCmd.PersistentFlags().BoolVar(&catalogRefresh, "refresh", false, "Bypass the cache and fetch fresh data")

	catalogFetchCmd.Flags().StringVar(&catalogOutput, "output", "", "Write records to a JSON file")

	catalogFilterCmd.Flags().Float64Var(&filterMinMass, "min-mass", 0, "Minimum planet mass (Earth masses)")
	catalogFilterCmd.Flags().Float64Var(&filterMaxMass, "max-mass", 1e6, "Maximum planet mass (Earth masses)")
	catalogFilterCmd.Flags().Float64Var(&filterMinPeriod, "min-period", 0, "Minimum orbital period (days)")
	catalogFilterCmd.Flags().Float64Var(&filterMaxPeriod, "max-period", 1e9, "Maximum orbital period (days)")
	catalogFilterCmd.Flags().Float64Var(&filterEcc, "ecc", 0, "Orbital eccentricity applied to all amplitudes [0,1)")
}

// fetchRecords is the shared fetch path of all data-driven commands: cached
// fetch by default, forced refresh on request. On failure any prior data
// stays whatever the caller had; the error is surfaced as a message.
func fetchRecords(cmd *cobra.Command) ([]types.PlanetRecord, error) {
	ctx := cmd.Context()
	if catalogRefresh {
		return globalClient.Catalog().Refresh(ctx, catalogLimit)
	}
	return globalClient.Catalog().Fetch(ctx, catalogLimit)
}

func runCatalogFetch(cmd *cobra.Command, args []string) error {
	records, err := fetchRecords(cmd)
	if err != nil {
		return fmt.Errorf("fetch failed, previous data (if any) remains valid: %w", err)
	}

	printRecordTable(records)
	summary := analysis.Summarize(records)
	fmt.Printf("\n%d planets, mass %.2f±%.2f M⊕, period %.2f-%.2f days, %d in habitable zone\n",
		summary.Count, summary.MeanMassEarth, summary.StdDevMassEarth,
		summary.MinPeriodDays, summary.MaxPeriodDays, summary.HabitableCount)

	if catalogOutput != "" {
		if err := writeJSON(catalogOutput, records); err != nil {
			return err
		}
		fmt.Printf("Records written to %s\n", catalogOutput)
	}
	return nil
}

func runCatalogFilter(cmd *cobra.Command, args []string) error {
	criteria := types.FilterCriteria{
		MassRange:    types.Range{Min: filterMinMass, Max: filterMaxMass},
		PeriodRange:  types.Range{Min: filterMinPeriod, Max: filterMaxPeriod},
		Eccentricity: filterEcc,
	}
	if err := criteria.Validate(); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if criteria.Eccentricity >= 1 {
		return fmt.Errorf("eccentricity must be below 1 for amplitude computation")
	}

	records, err := fetchRecords(cmd)
	if err != nil {
		return fmt.Errorf("fetch failed, previous data (if any) remains valid: %w", err)
	}

	filtered := selection.Select(records, criteria)
	if len(filtered) == 0 {
		fmt.Println("No planets match your filters.")
		return nil
	}

	fmt.Printf("%-25s %-20s %12s %14s %12s\n", "Planet", "Host", "Mass (M⊕)", "Period (days)", "K (m/s)")
	for _, rec := range filtered {
		k := radialvelocity.Amplitude(rec.PlanetMassEarth, rec.StarMassSolar, rec.OrbitalPeriodDays, criteria.Eccentricity)
		fmt.Printf("%-25s %-20s %12.2f %14.2f %12.4f\n",
			rec.Name, rec.HostName, rec.PlanetMassEarth, rec.OrbitalPeriodDays, k)
	}
	fmt.Printf("\n%d of %d planets match.\n", len(filtered), len(records))
	return nil
}

// printRecordTable prints the planet detail columns of the fetched set.
func printRecordTable(records []types.PlanetRecord) {
	fmt.Printf("%-25s %-20s %12s %14s %10s %10s\n",
		"Planet", "Host", "Mass (M⊕)", "Period (days)", "SMA (AU)", "M* (M☉)")
	for _, rec := range records {
		fmt.Printf("%-25s %-20s %12.2f %14.2f %10.3f %10.2f\n",
			rec.Name, rec.HostName, rec.PlanetMassEarth, rec.OrbitalPeriodDays,
			rec.SemiMajorAxisAU, rec.StarMassSolar)
	}
}

// writeJSON writes v to path as indented JSON.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
