package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var advisorCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Ask the exoplanet advisory service",
	Long: `Send questions or single-planet summaries to the configured generative
text service. Responses for identical inputs are cached for a bounded
duration. Advisory failures never abort the session; they surface inline.`,
}

var advisorAskCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a free-text exoplanet question",
	Long: `
Examples:
  exoscope-client advisor ask "What is the radial velocity method?"
  exoscope-client advisor ask "How are habitable zone boundaries determined?"
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdvisorAsk,
}

var advisorExplainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a single planet's key features",
	Long: `
Format a fetched planet's numeric fields into a summary prompt and ask the
advisory service for a short analysis.

Examples:
  exoscope-client advisor explain --planet "Kepler-452 b" --limit 500
`,
	RunE: runAdvisorExplain,
}

var advisorPlanet string

func init() {
	rootCmd.AddCommand(advisorCmd)
	advisorCmd.AddCommand(advisorAskCmd)
	advisorCmd.AddCommand(advisorExplainCmd)

	advisorExplainCmd.Flags().StringVar(&advisorPlanet, "planet", "", "Planet name as listed in the archive (required)")
	advisorExplainCmd.Flags().IntVar(&catalogLimit, "limit", 100, "Maximum number of rows to fetch (1-10000)")
	advisorExplainCmd.Flags().BoolVar(&catalogRefresh, "refresh", false, "Bypass the cache and fetch fresh data")
	advisorExplainCmd.MarkFlagRequired("planet")
}

func runAdvisorAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	answer, err := globalClient.Advisor().Ask(cmd.Context(), question)
	if err != nil {
		// Advisory failures are inline messages, not fatal errors.
		fmt.Printf("Advisory service unavailable: %v\n", err)
		return nil
	}

	fmt.Println(answer)
	return nil
}

func runAdvisorExplain(cmd *cobra.Command, args []string) error {
	records, err := fetchRecords(cmd)
	if err != nil {
		return fmt.Errorf("fetch failed, previous data (if any) remains valid: %w", err)
	}

	rec, ok := findPlanet(records, advisorPlanet)
	if !ok {
		return fmt.Errorf("planet %q not found in the first %d rows; raise --limit", advisorPlanet, catalogLimit)
	}

	text, err := globalClient.Advisor().Explain(cmd.Context(), rec)
	if err != nil {
		fmt.Printf("Advisory service unavailable: %v\n", err)
		return nil
	}

	fmt.Println(text)
	return nil
}
