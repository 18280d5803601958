package media

import "strings"

// DeriveMovieStatus evaluates, in order: a file on disk wins, then a
// monitored and released movie is wanted, anything else is missing.
// MovieDownloading is never returned.
func DeriveMovieStatus(hasFile, monitored, isAvailable bool) MovieStatus {
	switch {
	case hasFile:
		return MovieDownloaded
	case monitored && isAvailable:
		return MovieWanted
	default:
		return MovieMissing
	}
}

// ClampEpisodes forces 0 <= downloaded <= total. Negative totals count as zero.
func ClampEpisodes(total, downloaded int) (int, int) {
	total = max(total, 0)
	downloaded = min(max(downloaded, 0), total)
	return total, downloaded
}

// DeriveShowStatus computes a show's display status from its episode counts.
// ShowDownloading is never returned.
func DeriveShowStatus(total, downloaded int) ShowStatus {
	total, downloaded = ClampEpisodes(total, downloaded)
	switch {
	case total == 0:
		return ShowWanted
	case downloaded == total:
		return ShowComplete
	case downloaded > 0:
		return ShowPartial
	default:
		return ShowMissing
	}
}

// DeriveLifecycle maps Sonarr's series status. Unknown and deleted fold into Ended.
func DeriveLifecycle(status string) Lifecycle {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "continuing":
		return Continuing
	case "upcoming":
		return Upcoming
	default:
		return Ended
	}
}

// TMDBLifecycle maps TMDB's TV status strings.
func TMDBLifecycle(status string) Lifecycle {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "returning series":
		return Continuing
	case "in production", "planned", "pilot":
		return Upcoming
	default:
		return Ended
	}
}
