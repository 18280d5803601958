package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/media"
)

var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show a library movie with history and files",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovieCmd,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a library show, or one of its seasons",
	Long: `Show a library show with seasons, history and files.

Examples:
  arrdeck show 12             # Show overview
  arrdeck show 12 --season 2  # Episodes of season 2`,
	Args: cobra.ExactArgs(1),
	RunE: runShowCmd,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor <movie|show> <id>",
	Short: "Start monitoring a library item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetMonitored(cmd, args, true)
	},
}

var unmonitorCmd = &cobra.Command{
	Use:   "unmonitor <movie|show> <id>",
	Short: "Stop monitoring a library item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetMonitored(cmd, args, false)
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set-profile <movie|show> <id> <profile-id>",
	Short: "Assign a quality profile to a library item",
	Args:  cobra.ExactArgs(3),
	RunE:  runSetProfileCmd,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <movie|show> <id>",
	Short: "Remove an item from Radarr or Sonarr",
	Long:  "Removes the item upstream. Files on disk are kept unless --files is given.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDeleteCmd,
}

func init() {
	showCmd.Flags().Int("season", -1, "Season number to list episodes for")
	deleteCmd.Flags().Bool("files", false, "Also delete files on disk")
	rootCmd.AddCommand(movieCmd, showCmd, monitorCmd, unmonitorCmd, setProfileCmd, deleteCmd)
}

func runMovieCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	d, err := NewClient(serverURL).Movie(id)
	if err != nil {
		return fmt.Errorf("get movie: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), d)
		return nil
	}
	printMovieDetail(cmd.OutOrStdout(), d)
	return nil
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client := NewClient(serverURL)

	season, _ := cmd.Flags().GetInt("season")
	if season >= 0 {
		d, err := client.Season(id, season)
		if err != nil {
			return fmt.Errorf("get season: %w", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), d)
			return nil
		}
		printSeasonDetail(cmd.OutOrStdout(), d)
		return nil
	}

	d, err := client.Show(id)
	if err != nil {
		return fmt.Errorf("get show: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), d)
		return nil
	}
	printShowDetail(cmd.OutOrStdout(), d)
	return nil
}

func runSetMonitored(cmd *cobra.Command, args []string, monitored bool) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	item, err := NewClient(serverURL).Update(kind, id, &monitored, nil)
	if err != nil {
		return fmt.Errorf("update %s: %w", kind, err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), item)
		return nil
	}
	state := "unmonitored"
	if item.Monitored {
		state = "monitored"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", item.Title, year(item.Year), state)
	return nil
}

func runSetProfileCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	profileID, err := strconv.Atoi(args[2])
	if err != nil || profileID <= 0 {
		return fmt.Errorf("invalid profile id: %s", args[2])
	}
	item, err := NewClient(serverURL).Update(kind, id, nil, &profileID)
	if err != nil {
		return fmt.Errorf("update %s: %w", kind, err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), item)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) now uses quality profile %d\n", item.Title, year(item.Year), item.QualityProfileID)
	return nil
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	files, _ := cmd.Flags().GetBool("files")
	if err := NewClient(serverURL).Delete(kind, id, files); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if files {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d and its files\n", kind, id)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", kind, id)
	}
	return nil
}

func printItemHeader(w io.Writer, b media.Base, status string, monitored bool) {
	fmt.Fprintf(w, "%s (%s)\n", b.Title, year(b.Year))
	mon := "no"
	if monitored {
		mon = "yes"
	}
	fmt.Fprintf(w, "  Status:     %s\n", status)
	fmt.Fprintf(w, "  Monitored:  %s\n", mon)
	if b.Rating > 0 {
		fmt.Fprintf(w, "  Rating:     %.1f\n", b.Rating)
	}
	if len(b.Genres) > 0 {
		fmt.Fprintf(w, "  Genres:     %s\n", strings.Join(b.Genres, ", "))
	}
	if b.Runtime > 0 {
		fmt.Fprintf(w, "  Runtime:    %d min\n", b.Runtime)
	}
}

func printFiles(w io.Writer, files []media.MediaFile) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFiles (%d):\n", len(files))
	for _, f := range files {
		fmt.Fprintf(w, "  %s  %s  %s\n", dash(f.Quality), size(f.Size), f.Path)
	}
}

func printHistory(w io.Writer, events []media.HistoryEvent, limit int) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(w, "\nHistory:")
	for i, e := range events {
		if i == limit {
			fmt.Fprintf(w, "  ... %d more\n", len(events)-limit)
			break
		}
		when := "-"
		if e.Date != nil {
			when = humanize.Time(*e.Date)
		}
		fmt.Fprintf(w, "  %-14s %-24s %s\n", when, e.EventType, e.SourceTitle)
	}
}

func printMovieDetail(w io.Writer, d *media.MovieDetail) {
	printItemHeader(w, d.Base, string(d.Status), d.Monitored)
	if d.Quality != "" {
		fmt.Fprintf(w, "  Quality:    %s\n", d.Quality)
	}
	if d.Studio != "" {
		fmt.Fprintf(w, "  Studio:     %s\n", d.Studio)
	}
	if d.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", d.Overview)
	}
	printFiles(w, d.Files)
	printHistory(w, d.History, 10)
}

func printShowDetail(w io.Writer, d *media.ShowDetail) {
	printItemHeader(w, d.Base, string(d.Status), d.Monitored)
	fmt.Fprintf(w, "  Network:    %s\n", dash(d.Network))
	fmt.Fprintf(w, "  Airing:     %s\n", d.ShowStatus)
	fmt.Fprintf(w, "  Episodes:   %d/%d\n", d.DownloadedEpisodes, d.TotalEpisodes)
	if d.Overview != "" {
		fmt.Fprintf(w, "\n%s\n", d.Overview)
	}
	if len(d.Seasons) > 0 {
		fmt.Fprintln(w, "\nSeasons:")
		for _, s := range d.Seasons {
			fmt.Fprintf(w, "  %-12s %3d/%-3d %s\n", s.Name, s.DownloadedEpisodes, s.TotalEpisodes, s.Status)
		}
	}
	printFiles(w, d.Files)
	printHistory(w, d.History, 10)
}

func printSeasonDetail(w io.Writer, d *media.SeasonDetail) {
	fmt.Fprintf(w, "%s - %s\n", d.ShowTitle, d.Name)
	fmt.Fprintf(w, "  Status:     %s (%d/%d)\n\n", d.Status, d.DownloadedEpisodes, d.TotalEpisodes)
	for _, e := range d.Episodes {
		mark := " "
		if e.HasFile {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s E%02d  %-10s %s\n", mark, e.EpisodeNumber, dash(e.AirDate), e.Title)
	}
}
