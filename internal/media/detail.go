package media

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/vmunix/arrdeck/internal/tmdb"
	"github.com/vmunix/arrdeck/pkg/radarr"
	"github.com/vmunix/arrdeck/pkg/sonarr"
)

// MovieDetail is a library movie joined with its TMDB details, history and files.
type MovieDetail struct {
	MovieItem
	IMDBID          string                `json:"imdbId,omitempty"`
	Studio          string                `json:"studio,omitempty"`
	Certification   string                `json:"certification,omitempty"`
	ReleaseDate     string                `json:"releaseDate,omitempty"`
	Path            string                `json:"path,omitempty"`
	Credits         MediaCredits          `json:"credits"`
	Images          MediaImages           `json:"images"`
	Videos          MediaVideos           `json:"videos"`
	Reviews         []MediaReview         `json:"reviews"`
	Recommendations []MediaRecommendation `json:"recommendations"`
	ContentRatings  []ContentRating       `json:"contentRatings"`
	History         []HistoryEvent        `json:"history"`
	Files           []MediaFile           `json:"files"`
}

// ShowDetail is a library show joined with its TMDB details, history and files.
type ShowDetail struct {
	ShowItem
	IMDBID          string                `json:"imdbId,omitempty"`
	TVDBID          int                   `json:"tvdbId,omitempty"`
	Certification   string                `json:"certification,omitempty"`
	FirstAired      string                `json:"firstAired,omitempty"`
	Path            string                `json:"path,omitempty"`
	Seasons         []SeasonSummary       `json:"seasons"`
	Credits         MediaCredits          `json:"credits"`
	Images          MediaImages           `json:"images"`
	Videos          MediaVideos           `json:"videos"`
	Reviews         []MediaReview         `json:"reviews"`
	Recommendations []MediaRecommendation `json:"recommendations"`
	ContentRatings  []ContentRating       `json:"contentRatings"`
	History         []HistoryEvent        `json:"history"`
	Files           []MediaFile           `json:"files"`
}

// SeasonSummary is one season row of a show.
type SeasonSummary struct {
	SeasonNumber       int        `json:"seasonNumber"`
	Name               string     `json:"name"`
	Monitored          bool       `json:"monitored"`
	TotalEpisodes      int        `json:"totalEpisodes"`
	DownloadedEpisodes int        `json:"downloadedEpisodes"`
	Status             ShowStatus `json:"status"`
	AirDate            string     `json:"airDate,omitempty"`
	PosterURL          string     `json:"posterUrl,omitempty"`
}

// SeasonDetail is one season with its episodes.
type SeasonDetail struct {
	MediaType          Kind           `json:"mediaType"`
	ShowID             int            `json:"showId"`
	ShowTitle          string         `json:"showTitle"`
	SeasonNumber       int            `json:"seasonNumber"`
	Name               string         `json:"name"`
	Overview           string         `json:"overview"`
	AirDate            string         `json:"airDate,omitempty"`
	PosterURL          string         `json:"posterUrl,omitempty"`
	TotalEpisodes      int            `json:"totalEpisodes"`
	DownloadedEpisodes int            `json:"downloadedEpisodes"`
	Status             ShowStatus     `json:"status"`
	Episodes           []EpisodeBasic `json:"episodes"`
}

// EpisodeBasic is one episode row.
type EpisodeBasic struct {
	ID            int     `json:"id"`
	SeasonNumber  int     `json:"seasonNumber"`
	EpisodeNumber int     `json:"episodeNumber"`
	Title         string  `json:"title"`
	Overview      string  `json:"overview"`
	AirDate       string  `json:"airDate,omitempty"`
	Runtime       int     `json:"runtime"`
	StillURL      string  `json:"stillUrl,omitempty"`
	Rating        float64 `json:"rating"`
	HasFile       bool    `json:"hasFile"`
	Monitored     bool    `json:"monitored"`
}

// MediaCredits holds cast and crew.
type MediaCredits struct {
	MediaType Kind         `json:"mediaType"`
	Cast      []CastCredit `json:"cast"`
	Crew      []CrewCredit `json:"crew"`
}

// CastCredit is an actor credit.
type CastCredit struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character"`
	ProfileURL string `json:"profileUrl,omitempty"`
	Order      int    `json:"order"`
}

// CrewCredit is a crew credit.
type CrewCredit struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

// MediaImages holds artwork sets.
type MediaImages struct {
	MediaType Kind         `json:"mediaType"`
	Posters   []ImageAsset `json:"posters"`
	Backdrops []ImageAsset `json:"backdrops"`
	Logos     []ImageAsset `json:"logos"`
}

// ImageAsset is one artwork file.
type ImageAsset struct {
	URL         string  `json:"url"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
	Language    string  `json:"language,omitempty"`
}

// MediaVideos holds hosted videos.
type MediaVideos struct {
	MediaType Kind    `json:"mediaType"`
	Videos    []Video `json:"videos"`
}

// Video is a trailer, teaser or clip.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
	URL      string `json:"url,omitempty"`
}

// MediaReview is a user review.
type MediaReview struct {
	ID        string  `json:"id"`
	Author    string  `json:"author"`
	Content   string  `json:"content"`
	URL       string  `json:"url,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	Rating    float64 `json:"rating"`
}

// MediaRecommendation is a related title.
type MediaRecommendation struct {
	MediaType Kind     `json:"mediaType"`
	TMDBID    int      `json:"tmdbId"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	PosterURL string   `json:"posterUrl,omitempty"`
	Rating    float64  `json:"rating"`
	Genres    []string `json:"genres"`
}

// ContentRating is a per-country certification.
type ContentRating struct {
	Country string `json:"country"`
	Rating  string `json:"rating"`
}

// HistoryEvent is a download-manager history entry.
type HistoryEvent struct {
	ID          int        `json:"id"`
	MediaType   Kind       `json:"mediaType"`
	EventType   string     `json:"eventType"`
	SourceTitle string     `json:"sourceTitle"`
	Quality     string     `json:"quality"`
	Date        *time.Time `json:"date,omitempty"`
	EpisodeID   int        `json:"episodeId,omitempty"`
}

// MediaFile is a file on disk.
type MediaFile struct {
	ID           int        `json:"id"`
	MediaType    Kind       `json:"mediaType"`
	Path         string     `json:"path"`
	Size         int64      `json:"size"`
	Quality      string     `json:"quality"`
	ReleaseGroup string     `json:"releaseGroup,omitempty"`
	DateAdded    *time.Time `json:"dateAdded,omitempty"`
	SeasonNumber int        `json:"seasonNumber,omitempty"`
}

// NewMovieDetail joins a Radarr movie with optional TMDB details.
func NewMovieDetail(m *radarr.Movie, meta *tmdb.Movie, history []radarr.HistoryRecord, files []radarr.MovieFile, img ImageConfig) MovieDetail {
	img = img.WithDefaults()
	d := MovieDetail{
		MovieItem:       FromRadarrMovie(m),
		IMDBID:          m.IMDBID,
		Studio:          m.Studio,
		Certification:   m.Certification,
		ReleaseDate:     firstNonEmpty(m.InCinemas, m.DigitalRelease, m.PhysicalRelease),
		Path:            m.Path,
		Credits:         CreditsFromTMDB(KindMovie, nil, img),
		Images:          ImagesFromTMDB(KindMovie, nil, img),
		Videos:          VideosFromTMDB(KindMovie, nil),
		Reviews:         []MediaReview{},
		Recommendations: []MediaRecommendation{},
		ContentRatings:  []ContentRating{},
		History:         HistoryFromRadarr(history),
		Files:           FilesFromRadarr(files),
	}
	if meta == nil {
		return d
	}

	d.Tagline = meta.Tagline
	if d.Overview == "" {
		d.Overview = meta.Overview
	}
	if d.PosterURL == "" {
		d.PosterURL = tmdb.ImageURL(img.BaseURL, img.PosterSize, meta.PosterPath)
	}
	if d.BackdropURL == "" {
		d.BackdropURL = tmdb.ImageURL(img.BaseURL, img.BackdropSize, meta.BackdropPath)
	}
	if d.ReleaseDate == "" {
		d.ReleaseDate = meta.ReleaseDate
	}
	d.VoteCount = meta.VoteCount
	d.Popularity = meta.Popularity
	d.Credits = CreditsFromTMDB(KindMovie, meta.Credits, img)
	d.Images = ImagesFromTMDB(KindMovie, meta.Images, img)
	d.Videos = VideosFromTMDB(KindMovie, meta.Videos)
	d.Reviews = ReviewsFromTMDB(meta.Reviews)
	if meta.Recommendations != nil {
		d.Recommendations = MovieRecommendations(meta.Recommendations.Results, img)
	}
	d.ContentRatings = MovieCertifications(meta.ReleaseDates)
	return d
}

// NewShowDetail joins a Sonarr series with optional TMDB details.
func NewShowDetail(s *sonarr.Series, meta *tmdb.Show, history []sonarr.HistoryRecord, files []sonarr.EpisodeFile, img ImageConfig) ShowDetail {
	img = img.WithDefaults()
	d := ShowDetail{
		ShowItem:        FromSonarrSeries(s),
		IMDBID:          s.IMDBID,
		TVDBID:          deref(s.TVDBID),
		Certification:   s.Certification,
		FirstAired:      s.FirstAired,
		Path:            s.Path,
		Seasons:         seasonsFromSonarr(s.Seasons),
		Credits:         CreditsFromTMDB(KindShow, nil, img),
		Images:          ImagesFromTMDB(KindShow, nil, img),
		Videos:          VideosFromTMDB(KindShow, nil),
		Reviews:         []MediaReview{},
		Recommendations: []MediaRecommendation{},
		ContentRatings:  []ContentRating{},
		History:         HistoryFromSonarr(history),
		Files:           FilesFromSonarr(files),
	}
	if meta == nil {
		return d
	}

	d.Tagline = meta.Tagline
	if d.Overview == "" {
		d.Overview = meta.Overview
	}
	if d.PosterURL == "" {
		d.PosterURL = tmdb.ImageURL(img.BaseURL, img.PosterSize, meta.PosterPath)
	}
	if d.BackdropURL == "" {
		d.BackdropURL = tmdb.ImageURL(img.BaseURL, img.BackdropSize, meta.BackdropPath)
	}
	if d.Network == "" && len(meta.Networks) > 0 {
		d.Network = meta.Networks[0].Name
	}
	d.VoteCount = meta.VoteCount
	d.Popularity = meta.Popularity
	for i := range d.Seasons {
		for _, ms := range meta.Seasons {
			if ms.SeasonNumber == d.Seasons[i].SeasonNumber {
				d.Seasons[i].Name = ms.Name
				d.Seasons[i].AirDate = ms.AirDate
				d.Seasons[i].PosterURL = tmdb.ImageURL(img.BaseURL, img.PosterSize, ms.PosterPath)
			}
		}
	}
	d.Credits = CreditsFromTMDB(KindShow, meta.Credits, img)
	d.Images = ImagesFromTMDB(KindShow, meta.Images, img)
	d.Videos = VideosFromTMDB(KindShow, meta.Videos)
	d.Reviews = ReviewsFromTMDB(meta.Reviews)
	if meta.Recommendations != nil {
		d.Recommendations = ShowRecommendations(meta.Recommendations.Results, img)
	}
	d.ContentRatings = ShowContentRatings(meta.ContentRatings)
	return d
}

func seasonsFromSonarr(seasons []sonarr.Season) []SeasonSummary {
	out := make([]SeasonSummary, 0, len(seasons))
	for _, s := range seasons {
		var total, downloaded int
		if s.Statistics != nil {
			total, downloaded = ClampEpisodes(s.Statistics.EpisodeCount, s.Statistics.EpisodeFileCount)
		}
		out = append(out, SeasonSummary{
			SeasonNumber:       s.SeasonNumber,
			Name:               seasonName(s.SeasonNumber),
			Monitored:          s.Monitored,
			TotalEpisodes:      total,
			DownloadedEpisodes: downloaded,
			Status:             DeriveShowStatus(total, downloaded),
		})
	}
	slices.SortStableFunc(out, func(a, b SeasonSummary) int {
		return cmp.Compare(a.SeasonNumber, b.SeasonNumber)
	})
	return out
}

// NewSeasonDetail builds one season from Sonarr episodes and optional TMDB
// season details. Sonarr's episode list is authoritative; TMDB fills in
// stills, ratings and missing text.
func NewSeasonDetail(s *sonarr.Series, season int, episodes []sonarr.Episode, meta *tmdb.Season, img ImageConfig) SeasonDetail {
	img = img.WithDefaults()
	d := SeasonDetail{
		MediaType:    KindShow,
		ShowID:       s.ID,
		ShowTitle:    s.Title,
		SeasonNumber: season,
		Name:         seasonName(season),
		Episodes:     []EpisodeBasic{},
	}

	byNumber := map[int]tmdb.Episode{}
	if meta != nil {
		if meta.Name != "" {
			d.Name = meta.Name
		}
		d.Overview = meta.Overview
		d.AirDate = meta.AirDate
		d.PosterURL = tmdb.ImageURL(img.BaseURL, img.PosterSize, meta.PosterPath)
		for _, e := range meta.Episodes {
			byNumber[e.EpisodeNumber] = e
		}
	}

	var total, downloaded int
	for _, e := range episodes {
		if e.SeasonNumber != season {
			continue
		}
		ep := EpisodeBasic{
			ID:            e.ID,
			SeasonNumber:  e.SeasonNumber,
			EpisodeNumber: e.EpisodeNumber,
			Title:         e.Title,
			Overview:      deref(e.Overview),
			AirDate:       e.AirDate,
			Runtime:       positive(e.Runtime),
			HasFile:       e.HasFile,
			Monitored:     e.Monitored,
		}
		if te, ok := byNumber[e.EpisodeNumber]; ok {
			ep.StillURL = tmdb.ImageURL(img.BaseURL, img.StillSize, te.StillPath)
			ep.Rating = te.VoteAverage
			if ep.Overview == "" {
				ep.Overview = te.Overview
			}
			if ep.Runtime == 0 {
				ep.Runtime = positive(deref(te.Runtime))
			}
		}
		total++
		if e.HasFile {
			downloaded++
		}
		d.Episodes = append(d.Episodes, ep)
	}
	slices.SortStableFunc(d.Episodes, func(a, b EpisodeBasic) int {
		return cmp.Compare(a.EpisodeNumber, b.EpisodeNumber)
	})

	d.TotalEpisodes, d.DownloadedEpisodes = total, downloaded
	d.Status = DeriveShowStatus(total, downloaded)
	return d
}

func seasonName(n int) string {
	if n == 0 {
		return "Specials"
	}
	return "Season " + strconv.Itoa(n)
}

// CreditsFromTMDB maps cast and crew. Cast is ordered by billing.
func CreditsFromTMDB(kind Kind, c *tmdb.Credits, img ImageConfig) MediaCredits {
	out := MediaCredits{MediaType: kind, Cast: []CastCredit{}, Crew: []CrewCredit{}}
	if c == nil {
		return out
	}
	for _, m := range c.Cast {
		out.Cast = append(out.Cast, CastCredit{
			ID:         m.ID,
			Name:       m.Name,
			Character:  m.Character,
			ProfileURL: tmdb.ImageURL(img.BaseURL, img.ProfileSize, m.ProfilePath),
			Order:      m.Order,
		})
	}
	slices.SortStableFunc(out.Cast, func(a, b CastCredit) int { return cmp.Compare(a.Order, b.Order) })
	for _, m := range c.Crew {
		out.Crew = append(out.Crew, CrewCredit{
			ID:         m.ID,
			Name:       m.Name,
			Job:        m.Job,
			Department: m.Department,
			ProfileURL: tmdb.ImageURL(img.BaseURL, img.ProfileSize, m.ProfilePath),
		})
	}
	return out
}

// ImagesFromTMDB maps artwork sets. Posters use the poster size,
// backdrops and logos the backdrop size.
func ImagesFromTMDB(kind Kind, imgs *tmdb.Images, img ImageConfig) MediaImages {
	out := MediaImages{MediaType: kind, Posters: []ImageAsset{}, Backdrops: []ImageAsset{}, Logos: []ImageAsset{}}
	if imgs == nil {
		return out
	}
	out.Posters = imageAssets(imgs.Posters, img.BaseURL, img.PosterSize)
	out.Backdrops = imageAssets(imgs.Backdrops, img.BaseURL, img.BackdropSize)
	out.Logos = imageAssets(imgs.Logos, img.BaseURL, img.BackdropSize)
	return out
}

func imageAssets(in []tmdb.Image, base, size string) []ImageAsset {
	out := make([]ImageAsset, 0, len(in))
	for _, i := range in {
		if i.FilePath == "" {
			continue
		}
		out = append(out, ImageAsset{
			URL:         tmdb.ImageURL(base, size, i.FilePath),
			Width:       i.Width,
			Height:      i.Height,
			AspectRatio: i.AspectRatio,
			Language:    deref(i.Language),
		})
	}
	return out
}

// VideosFromTMDB maps hosted videos, trailers first.
func VideosFromTMDB(kind Kind, v *tmdb.Videos) MediaVideos {
	out := MediaVideos{MediaType: kind, Videos: []Video{}}
	if v == nil {
		return out
	}
	for _, r := range v.Results {
		out.Videos = append(out.Videos, Video{
			Key:      r.Key,
			Name:     r.Name,
			Site:     r.Site,
			Type:     r.Type,
			Official: r.Official,
			URL:      videoURL(r.Site, r.Key),
		})
	}
	slices.SortStableFunc(out.Videos, func(a, b Video) int {
		return cmp.Compare(videoRank(a.Type), videoRank(b.Type))
	})
	return out
}

func videoURL(site, key string) string {
	if key == "" {
		return ""
	}
	switch site {
	case "YouTube":
		return "https://www.youtube.com/watch?v=" + key
	case "Vimeo":
		return "https://vimeo.com/" + key
	}
	return ""
}

func videoRank(t string) int {
	switch t {
	case "Trailer":
		return 0
	case "Teaser":
		return 1
	}
	return 2
}

// ReviewsFromTMDB maps a review page. Unrated reviews carry 0.
func ReviewsFromTMDB(p *tmdb.Page[tmdb.Review]) []MediaReview {
	if p == nil {
		return []MediaReview{}
	}
	out := make([]MediaReview, 0, len(p.Results))
	for _, r := range p.Results {
		out = append(out, MediaReview{
			ID:        r.ID,
			Author:    firstNonEmpty(r.Author, r.AuthorDetails.Username, "Unknown"),
			Content:   r.Content,
			URL:       r.URL,
			CreatedAt: r.CreatedAt,
			Rating:    deref(r.AuthorDetails.Rating),
		})
	}
	return out
}

// MovieRecommendations maps recommended movies.
func MovieRecommendations(results []tmdb.MovieResult, img ImageConfig) []MediaRecommendation {
	out := make([]MediaRecommendation, 0, len(results))
	for i := range results {
		item := FromTMDBMovie(&results[i], img)
		out = append(out, recommendation(item.Base))
	}
	return out
}

// ShowRecommendations maps recommended shows.
func ShowRecommendations(results []tmdb.ShowResult, img ImageConfig) []MediaRecommendation {
	out := make([]MediaRecommendation, 0, len(results))
	for i := range results {
		item := FromTMDBShow(&results[i], img)
		out = append(out, recommendation(item.Base))
	}
	return out
}

func recommendation(b Base) MediaRecommendation {
	return MediaRecommendation{
		MediaType: b.MediaType,
		TMDBID:    b.TMDBID,
		Title:     b.Title,
		Year:      b.Year,
		PosterURL: b.PosterURL,
		Rating:    b.Rating,
		Genres:    b.Genres,
	}
}

// MovieCertifications returns the first non-empty certification per country.
func MovieCertifications(rd *tmdb.ReleaseDates) []ContentRating {
	out := []ContentRating{}
	if rd == nil {
		return out
	}
	for _, r := range rd.Results {
		for _, d := range r.ReleaseDates {
			if d.Certification != "" {
				out = append(out, ContentRating{Country: r.Country, Rating: d.Certification})
				break
			}
		}
	}
	return out
}

// ShowContentRatings maps per-country TV ratings, skipping blanks.
func ShowContentRatings(cr *tmdb.ContentRatings) []ContentRating {
	out := []ContentRating{}
	if cr == nil {
		return out
	}
	for _, r := range cr.Results {
		if r.Rating != "" {
			out = append(out, ContentRating{Country: r.Country, Rating: r.Rating})
		}
	}
	return out
}

// HistoryFromRadarr maps Radarr history, newest first.
func HistoryFromRadarr(records []radarr.HistoryRecord) []HistoryEvent {
	out := make([]HistoryEvent, 0, len(records))
	for _, r := range records {
		out = append(out, HistoryEvent{
			ID:          r.ID,
			MediaType:   KindMovie,
			EventType:   r.EventType,
			SourceTitle: r.SourceTitle,
			Quality:     qualityName(r.Quality),
			Date:        r.Date,
		})
	}
	sortHistory(out)
	return out
}

// HistoryFromSonarr maps Sonarr history, newest first.
func HistoryFromSonarr(records []sonarr.HistoryRecord) []HistoryEvent {
	out := make([]HistoryEvent, 0, len(records))
	for _, r := range records {
		out = append(out, HistoryEvent{
			ID:          r.ID,
			MediaType:   KindShow,
			EventType:   r.EventType,
			SourceTitle: r.SourceTitle,
			Quality:     qualityName(r.Quality),
			Date:        r.Date,
			EpisodeID:   r.EpisodeID,
		})
	}
	sortHistory(out)
	return out
}

// sortHistory orders newest first; undated events sink to the end.
func sortHistory(events []HistoryEvent) {
	slices.SortStableFunc(events, func(a, b HistoryEvent) int {
		switch {
		case a.Date == nil && b.Date == nil:
			return 0
		case a.Date == nil:
			return 1
		case b.Date == nil:
			return -1
		}
		return b.Date.Compare(*a.Date)
	})
}

// FilesFromRadarr maps movie files.
func FilesFromRadarr(files []radarr.MovieFile) []MediaFile {
	out := make([]MediaFile, 0, len(files))
	for _, f := range files {
		out = append(out, MediaFile{
			ID:           f.ID,
			MediaType:    KindMovie,
			Path:         firstNonEmpty(f.RelativePath, f.Path),
			Size:         max(f.Size, 0),
			Quality:      qualityName(f.Quality),
			ReleaseGroup: f.ReleaseGroup,
			DateAdded:    f.DateAdded,
		})
	}
	return out
}

// FilesFromSonarr maps episode files ordered by season.
func FilesFromSonarr(files []sonarr.EpisodeFile) []MediaFile {
	out := make([]MediaFile, 0, len(files))
	for _, f := range files {
		out = append(out, MediaFile{
			ID:           f.ID,
			MediaType:    KindShow,
			Path:         firstNonEmpty(f.RelativePath, f.Path),
			Size:         max(f.Size, 0),
			Quality:      qualityName(f.Quality),
			ReleaseGroup: f.ReleaseGroup,
			DateAdded:    f.DateAdded,
			SeasonNumber: f.SeasonNumber,
		})
	}
	slices.SortStableFunc(out, func(a, b MediaFile) int {
		return cmp.Or(cmp.Compare(a.SeasonNumber, b.SeasonNumber), cmp.Compare(a.Path, b.Path))
	})
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
