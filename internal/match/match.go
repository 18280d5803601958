package match

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence grades a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

func grade(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Candidate is a library entry.
type Candidate struct {
	ID     int
	TMDBID int
	Title  string
	Year   int
}

// Result is the best candidate for a lookup. ID is 0 when nothing matched.
type Result struct {
	ID         int
	Title      string
	Score      float64
	Confidence Confidence
}

type entry struct {
	Candidate
	key     string
	numbers []string
}

// Index answers library membership lookups. It is immutable once built.
type Index struct {
	byTMDB  map[int]Candidate
	entries []entry
}

// NewIndex indexes the library.
func NewIndex(candidates []Candidate) *Index {
	ix := &Index{
		byTMDB:  make(map[int]Candidate, len(candidates)),
		entries: make([]entry, 0, len(candidates)),
	}
	for _, c := range candidates {
		if c.TMDBID > 0 {
			ix.byTMDB[c.TMDBID] = c
		}
		k := Key(c.Title)
		ix.entries = append(ix.entries, entry{Candidate: c, key: k, numbers: numberRegex.FindAllString(k, -1)})
	}
	return ix
}

// Len returns the number of indexed candidates.
func (ix *Index) Len() int { return len(ix.entries) }

// Find returns the library entry for a catalog title. A TMDB id hit is
// exact; otherwise the best fuzzy title match is returned if its
// confidence reaches floor.
func (ix *Index) Find(tmdbID int, title string, year int, floor Confidence) (Result, bool) {
	if c, ok := ix.byTMDB[tmdbID]; ok && tmdbID > 0 {
		return Result{ID: c.ID, Title: c.Title, Score: 1, Confidence: ConfidenceHigh}, true
	}
	r := ix.Best(title, year)
	if r.Confidence < floor || r.Confidence == ConfidenceNone {
		return Result{}, false
	}
	return r, true
}

// Best returns the most similar candidate by Jaro-Winkler over the
// normalized titles, adjusted for sequel numbers and release year.
func (ix *Index) Best(title string, year int) Result {
	key := Key(title)
	numbers := numberRegex.FindAllString(key, -1)

	var best Result
	for _, e := range ix.entries {
		score := float64(edlib.JaroWinklerSimilarity(key, e.key))
		score = adjustForNumbers(score, numbers, e.numbers)
		score = adjustForYear(score, year, e.Year)
		if score > best.Score {
			best = Result{ID: e.ID, Title: e.Title, Score: score}
		}
	}
	best.Confidence = grade(best.Score)
	if best.Confidence == ConfidenceNone {
		return Result{Score: best.Score}
	}
	return best
}

// adjustForNumbers rewards a shared sequel number and penalizes a
// mismatched or missing one.
func adjustForNumbers(score float64, want, have []string) float64 {
	if len(want) == 0 {
		return score
	}
	if len(have) == 0 {
		return score * 0.85
	}
	set := make(map[string]struct{}, len(have))
	for _, n := range have {
		set[n] = struct{}{}
	}
	for _, n := range want {
		if _, ok := set[n]; ok {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}

// adjustForYear penalizes known years more than one apart. Release years
// drift by one between providers around New Year.
func adjustForYear(score float64, want, have int) float64 {
	if want <= 0 || have <= 0 {
		return score
	}
	d := want - have
	if d < 0 {
		d = -d
	}
	if d <= 1 {
		return score
	}
	return score * 0.80
}
