package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exoscope/exoscope-client/internal/types"
	"github.com/exoscope/exoscope-client/pkg/astronomy/radialvelocity"
)

var rvCmd = &cobra.Command{
	Use:   "rv",
	Short: "Radial velocity derivations",
	Long:  `Derive radial velocity amplitudes and velocity-vs-time curves for fetched planets`,
}

var rvCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Generate the radial velocity curve for one planet",
	Long: `
Generate the stellar wobble signal induced by a planet over two orbital
periods, sampled at 1000 evenly spaced points.

Examples:
  # Curve for a named planet from the first 100 archive rows
  exoscope-client rv curve --planet "Kepler-452 b" --limit 100

  # Assume an eccentric orbit and export the samples
  exoscope-client rv curve --planet "HD 209458 b" --ecc 0.3 --output curve.json
`,
	RunE: runRVCurve,
}

var (
	rvPlanet string
	rvEcc    float64
	rvOutput string
)

func init() {
	rootCmd.AddCommand(rvCmd)
	rvCmd.AddCommand(rvCurveCmd)

	rvCmd.PersistentFlags().IntVar(&catalogLimit, "limit", 100, "Maximum number of rows to fetch (1-10000)")
	rvCmd.PersistentFlags().BoolVar(&catalogRefresh, "refresh", false, "Bypass the cache and fetch fresh data")

	rvCurveCmd.Flags().StringVar(&rvPlanet, "planet", "", "Planet name as listed in the archive (required)")
	rvCurveCmd.Flags().Float64Var(&rvEcc, "ecc", 0, "Orbital eccentricity [0,1)")
	rvCurveCmd.Flags().StringVar(&rvOutput, "output", "", "Write curve samples to a JSON file")
	rvCurveCmd.MarkFlagRequired("planet")
}

func runRVCurve(cmd *cobra.Command, args []string) error {
	if rvEcc < 0 || rvEcc >= 1 {
		return fmt.Errorf("eccentricity %.4g outside [0, 1)", rvEcc)
	}

	records, err := fetchRecords(cmd)
	if err != nil {
		return fmt.Errorf("fetch failed, previous data (if any) remains valid: %w", err)
	}

	rec, ok := findPlanet(records, rvPlanet)
	if !ok {
		return fmt.Errorf("planet %q not found in the first %d rows; raise --limit", rvPlanet, catalogLimit)
	}

	curve := radialvelocity.CurveForRecord(rec, rvEcc)
	fmt.Printf("Planet:       %s (%s)\n", curve.PlanetName, curve.HostName)
	fmt.Printf("Amplitude K:  %.4f m/s\n", curve.AmplitudeMps)
	fmt.Printf("Period:       %.2f days\n", curve.PeriodDays)
	fmt.Printf("Span:         %.2f days, %d samples\n", curve.SpanDays, len(curve.Samples))

	if rvOutput != "" {
		if err := writeJSON(rvOutput, curve); err != nil {
			return err
		}
		fmt.Printf("Curve written to %s\n", rvOutput)
	}
	return nil
}

// findPlanet locates a record by archive planet name, case-insensitive.
func findPlanet(records []types.PlanetRecord, name string) (types.PlanetRecord, bool) {
	for _, rec := range records {
		if strings.EqualFold(rec.Name, name) {
			return rec, true
		}
	}
	return types.PlanetRecord{}, false
}
