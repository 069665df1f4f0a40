package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	exoscope "github.com/exoscope/exoscope-client/pkg/client"
	"github.com/exoscope/exoscope-client/pkg/utils"
)

const (
	// Application constants
	appName = "exoscope-client"
	version = "v1.0.0"
)

var (
	// Global client instance
	globalClient *exoscope.ExoscopeClient
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Exoscope client for exoplanet radial velocity analysis",
	Long: `Exoscope Client is a command-line tool for exploring confirmed exoplanets
with the radial velocity detection method. It fetches live data from the
NASA Exoplanet Archive, derives radial velocity amplitudes and curves,
computes habitable zone boundaries from stellar effective temperatures,
and answers exoplanet questions through a generative text service.

Fetched data is memoized for a bounded duration; use --refresh on the
catalog commands to force a fresh fetch.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config-only commands don't need the full client
		if cmd.Name() == "init" || cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		globalClient, err = exoscope.New()
		if err != nil {
			return fmt.Errorf("failed to initialize client: %w", err)
		}
		return nil
	},
}

// initCmd initializes the client configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the client configuration",
	Long:  `Create a default configuration file under ~/.exoscope if none exists`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := utils.DefaultConfig()
		if err := utils.SaveConfig(config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		path, err := utils.GetConfigPath()
		if err == nil {
			fmt.Printf("Edit %s to set the advisor API key.\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
