package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server version and upstream health",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, _ []string) error {
	status, err := NewClient(serverURL).Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), status)
		return nil
	}
	printStatus(cmd.OutOrStdout(), serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "arrdeck v%s | Server: %s\n\n", s.Version, server)
	fmt.Fprintln(w, "Sources")
	for _, src := range s.Sources {
		state := "not configured"
		switch {
		case src.OK:
			state = "ok"
			if src.Version != "" {
				state += " (v" + src.Version + ")"
			}
		case src.Configured:
			state = "FAIL " + src.Error
		}
		fmt.Fprintf(w, "  %-8s %s\n", src.Source+":", state)
	}
}
