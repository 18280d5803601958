package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/media"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <movie|show>",
	Short: "Browse or search the TMDB catalog",
	Long: `Browse the TMDB catalog, or search it by title with --query.
Titles already in the library are marked.

Examples:
  arrdeck discover movie --genre Horror --year-min 1980 --year-max 1989
  arrdeck discover show -q "the wire"`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscoverCmd,
}

var genresCmd = &cobra.Command{
	Use:   "genres <movie|show>",
	Short: "List the genre catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenresCmd,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles <movie|show>",
	Short: "List quality profiles",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesCmd,
}

func init() {
	addListFlags(discoverCmd)
	rootCmd.AddCommand(discoverCmd, genresCmd, profilesCmd)
}

func runDiscoverCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	client := NewClient(serverURL)
	q := listQuery(cmd)
	w := cmd.OutOrStdout()

	if kind == media.KindShow {
		d, err := client.DiscoverShows(q)
		if err != nil {
			return fmt.Errorf("discover shows: %w", err)
		}
		if jsonOutput {
			printJSON(w, d)
			return nil
		}
		for i := range d.Items {
			printDiscovered(w, d.Items[i].Base)
		}
		printPageFooter(w, d.Meta.Page, d.Meta.TotalPages, d.Meta.TotalItems)
		return nil
	}

	d, err := client.DiscoverMovies(q)
	if err != nil {
		return fmt.Errorf("discover movies: %w", err)
	}
	if jsonOutput {
		printJSON(w, d)
		return nil
	}
	for i := range d.Items {
		printDiscovered(w, d.Items[i].Base)
	}
	printPageFooter(w, d.Meta.Page, d.Meta.TotalPages, d.Meta.TotalItems)
	return nil
}

func printDiscovered(w io.Writer, b media.Base) {
	mark := " "
	if b.InLibrary {
		mark = "*"
	}
	fmt.Fprintf(w, "%s %-8d %-44s %-5s %4.1f\n", mark, b.TMDBID, truncate(b.Title, 44), year(b.Year), b.Rating)
}

func runGenresCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	resp, err := NewClient(serverURL).Genres(kind)
	if err != nil {
		return fmt.Errorf("list genres: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), resp)
		return nil
	}
	for _, g := range resp.Genres {
		fmt.Fprintf(cmd.OutOrStdout(), "%6d  %s\n", g.ID, g.Name)
	}
	return nil
}

func runProfilesCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	profiles, err := NewClient(serverURL).Profiles(kind)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), profiles)
		return nil
	}
	if len(profiles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quality profiles")
		return nil
	}
	for _, p := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", p.ID, p.Name)
	}
	return nil
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
