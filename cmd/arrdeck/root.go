package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "arrdeck",
	Short: "CLI client for the arrdeck media dashboard",
	Long: `arrdeck - CLI client for the arrdeck media dashboard

Browse the Radarr and Sonarr libraries, discover titles on TMDB,
and manage monitoring from the terminal.

Run 'arrdeckd' to start the server daemon.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8484", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrdeck {{.Version}}\n")
}
