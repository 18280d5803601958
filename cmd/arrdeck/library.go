package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the Radarr movie library",
	Long: `List the Radarr movie library with derived statuses.

Examples:
  arrdeck movies                          # First page, sorted by title
  arrdeck movies -s wanted                # Monitored and released, no file
  arrdeck movies --genre Action --sort rating --dir desc`,
	Args: cobra.NoArgs,
	RunE: runMoviesCmd,
}

var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "List the Sonarr show library",
	Long: `List the Sonarr show library with derived statuses.

Examples:
  arrdeck shows -s partial                # Some episodes on disk
  arrdeck shows --network HBO --network AMC
  arrdeck shows --sort nextAiring`,
	Args: cobra.NoArgs,
	RunE: runShowsCmd,
}

func init() {
	for _, c := range []*cobra.Command{moviesCmd, showsCmd} {
		addListFlags(c)
		rootCmd.AddCommand(c)
	}
	showsCmd.Flags().StringSlice("network", nil, "Filter by network (repeatable)")
}

func addListFlags(c *cobra.Command) {
	c.Flags().StringP("status", "s", "", "Filter by status")
	c.Flags().StringP("query", "q", "", "Filter by title")
	c.Flags().StringSlice("genre", nil, "Filter by genre (repeatable, any match)")
	c.Flags().Int("year-min", 0, "Earliest year")
	c.Flags().Int("year-max", 0, "Latest year")
	c.Flags().Float64("rating-min", 0, "Minimum rating (0-10)")
	c.Flags().String("sort", "", "Sort field (title, year, rating, added, nextAiring)")
	c.Flags().String("dir", "", "Sort direction (asc, desc)")
	c.Flags().IntP("page", "p", 1, "Page number")
	c.Flags().IntP("page-size", "l", 50, "Items per page")
}

// listQuery turns the list flags into query parameters. Unset flags are omitted.
func listQuery(cmd *cobra.Command) url.Values {
	q := url.Values{}
	flags := cmd.Flags()
	setString := func(flag, param string) {
		if v, _ := flags.GetString(flag); v != "" {
			q.Set(param, v)
		}
	}
	setString("status", "status")
	setString("query", "q")
	setString("sort", "sort")
	setString("dir", "dir")

	for _, name := range []string{"genre", "network"} {
		if flags.Lookup(name) == nil {
			continue
		}
		vals, _ := flags.GetStringSlice(name)
		for _, v := range vals {
			q.Add(name, v)
		}
	}

	for flag, param := range map[string]string{"year-min": "year_min", "year-max": "year_max", "page": "page", "page-size": "page_size"} {
		if flags.Changed(flag) {
			v, _ := flags.GetInt(flag)
			q.Set(param, strconv.Itoa(v))
		}
	}
	if flags.Changed("rating-min") {
		v, _ := flags.GetFloat64("rating-min")
		q.Set("rating_min", strconv.FormatFloat(v, 'f', -1, 64))
	}
	return q
}

func runMoviesCmd(cmd *cobra.Command, _ []string) error {
	list, err := NewClient(serverURL).Movies(listQuery(cmd))
	if err != nil {
		return fmt.Errorf("list movies: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), list)
		return nil
	}
	printMovieList(cmd.OutOrStdout(), list)
	return nil
}

func runShowsCmd(cmd *cobra.Command, _ []string) error {
	list, err := NewClient(serverURL).Shows(listQuery(cmd))
	if err != nil {
		return fmt.Errorf("list shows: %w", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), list)
		return nil
	}
	printShowList(cmd.OutOrStdout(), list)
	return nil
}

func printMovieList(w io.Writer, l *library.MovieList) {
	s := l.Stats
	fmt.Fprintf(w, "Movies: %d | downloaded %d | downloading %d | wanted %d | missing %d\n\n",
		s.All, s.Downloaded, s.Downloading, s.Wanted, s.Missing)
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "No movies match")
		return
	}
	fmt.Fprintf(w, "%-6s %-40s %-5s %-11s %-8s %s\n", "ID", "TITLE", "YEAR", "STATUS", "QUALITY", "SIZE")
	for i := range l.Items {
		m := &l.Items[i]
		fmt.Fprintf(w, "%-6d %-40s %-5s %-11s %-8s %s\n",
			m.ID, truncate(m.Title, 40), year(m.Year), m.Status, dash(m.Quality), size(m.SizeOnDisk))
	}
	printPageFooter(w, l.Meta.Page, l.Meta.TotalPages, l.Meta.TotalItems)
}

func printShowList(w io.Writer, l *library.ShowList) {
	s := l.Stats
	fmt.Fprintf(w, "Shows: %d | complete %d | partial %d | downloading %d | missing %d | wanted %d\n\n",
		s.All, s.Complete, s.Partial, s.Downloading, s.Missing, s.Wanted)
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "No shows match")
		return
	}
	fmt.Fprintf(w, "%-6s %-36s %-9s %-9s %-14s %s\n", "ID", "TITLE", "STATUS", "EPISODES", "NETWORK", "NEXT")
	for i := range l.Items {
		sh := &l.Items[i]
		next := "-"
		if sh.NextEpisode != nil {
			next = humanize.Time(*sh.NextEpisode)
		}
		fmt.Fprintf(w, "%-6d %-36s %-9s %-9s %-14s %s\n",
			sh.ID, truncate(sh.Title, 36), sh.Status,
			fmt.Sprintf("%d/%d", sh.DownloadedEpisodes, sh.TotalEpisodes),
			truncate(dash(sh.Network), 14), next)
	}
	printPageFooter(w, l.Meta.Page, l.Meta.TotalPages, l.Meta.TotalItems)
}

func printPageFooter(w io.Writer, page, pages, total int) {
	fmt.Fprintf(w, "\nPage %d of %d (%s items)\n", page, max(pages, 1), humanize.Comma(int64(total)))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return strconv.Itoa(y)
}

func size(b int64) string {
	if b <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(b))
}

// parseKind accepts the singular or plural kind name.
func parseKind(s string) (media.Kind, error) {
	switch strings.ToLower(s) {
	case "movie", "movies":
		return media.KindMovie, nil
	case "show", "shows", "series", "tv":
		return media.KindShow, nil
	}
	return "", fmt.Errorf("invalid kind %q (want movie or show)", s)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}
