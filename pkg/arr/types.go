package arr

// Image is an artwork entry on a movie or series resource.
type Image struct {
	CoverType string `json:"coverType"` // poster, fanart, banner, clearlogo, screenshot
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// QualityProfile is a named quality profile.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// QualityModel wraps the quality of a file the way both APIs nest it.
type QualityModel struct {
	Quality *struct {
		ID         int    `json:"id"`
		Name       string `json:"name"`
		Resolution int    `json:"resolution,omitempty"`
	} `json:"quality,omitempty"`
}

// Name returns the nested quality name, or "" if absent.
func (q *QualityModel) Name() string {
	if q == nil || q.Quality == nil {
		return ""
	}
	return q.Quality.Name
}

// Page is the paging envelope used by queue and history endpoints.
type Page[T any] struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Records      []T `json:"records"`
}

// FindImage returns the remote URL of the first image whose cover type
// matches, or "" if none does.
func FindImage(images []Image, coverType string) string {
	for _, img := range images {
		if img.CoverType == coverType {
			return img.RemoteURL
		}
	}
	return ""
}

// SystemStatus is the subset of /api/v3/system/status used for health checks.
type SystemStatus struct {
	AppName string `json:"appName"`
	Version string `json:"version"`
}

// Changes are the editable fields of a movie or series. Nil fields are left
// as the service has them.
type Changes struct {
	Monitored        *bool
	QualityProfileID *int
}

// Empty reports whether no field is set.
func (c Changes) Empty() bool {
	return c.Monitored == nil && c.QualityProfileID == nil
}

// Fields returns the set fields keyed by their API names.
func (c Changes) Fields() map[string]any {
	f := make(map[string]any, 2)
	if c.Monitored != nil {
		f["monitored"] = *c.Monitored
	}
	if c.QualityProfileID != nil {
		f["qualityProfileId"] = *c.QualityProfileID
	}
	return f
}
