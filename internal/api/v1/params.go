package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/media"
	"github.com/vmunix/arrdeck/pkg/pagination"
)

const maxPageSize = 500

// listParams are the query parameters shared by the list and discover routes.
type listParams struct {
	Status    string   `validate:"omitempty,max=32"`
	Search    string   `validate:"max=200"`
	Genres    []string `validate:"dive,min=1,max=64"`
	Networks  []string `validate:"dive,min=1,max=128"`
	YearMin   *int     `validate:"omitempty,gte=1800,lte=3000"`
	YearMax   *int     `validate:"omitempty,gte=1800,lte=3000"`
	RatingMin *float64 `validate:"omitempty,gte=0,lte=10"`
	Sort      string   `validate:"omitempty,oneof=title year rating added nextAiring"`
	Dir       string   `validate:"omitempty,oneof=asc desc"`
	Page      int      `validate:"gte=1"`
	PageSize  int      `validate:"gte=0"`
}

var movieStatuses = "oneof=all downloaded downloading wanted missing"
var showStatuses = "oneof=all complete partial downloading missing wanted"

// parseListParams reads and validates the query string. Malformed numbers
// and rule violations are returned as a single descriptive error.
func (s *Server) parseListParams(r *http.Request) (listParams, error) {
	q := r.URL.Query()
	p := listParams{
		Status:   strings.TrimSpace(q.Get("status")),
		Search:   strings.TrimSpace(q.Get("q")),
		Genres:   multi(q, "genre"),
		Networks: multi(q, "network"),
		Sort:     q.Get("sort"),
		Dir:      strings.ToLower(q.Get("dir")),
		Page:     1,
	}

	var err error
	if p.YearMin, err = optInt(q, "year_min"); err != nil {
		return p, err
	}
	if p.YearMax, err = optInt(q, "year_max"); err != nil {
		return p, err
	}
	if v := q.Get("rating_min"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, fmt.Errorf("rating_min: must be a number")
		}
		p.RatingMin = &f
	}
	if v := q.Get("page"); v != "" {
		if p.Page, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("page: must be a positive integer")
		}
	}
	if v := q.Get("page_size"); v != "" {
		if p.PageSize, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("page_size: must be a non-negative integer")
		}
	}

	if err := s.validate.Struct(p); err != nil {
		return p, validationError(err)
	}
	if p.PageSize > maxPageSize {
		return p, fmt.Errorf("page_size: must be at most %d", maxPageSize)
	}
	if p.YearMin != nil && p.YearMax != nil && *p.YearMin > *p.YearMax {
		return p, fmt.Errorf("year_min: must not exceed year_max")
	}
	return p, nil
}

// checkStatus validates status against the tabs of kind.
func (s *Server) checkStatus(kind media.Kind, status string) error {
	if status == "" {
		return nil
	}
	rule := movieStatuses
	if kind == media.KindShow {
		rule = showStatuses
	}
	if err := s.validate.Var(status, rule); err != nil {
		return fmt.Errorf("status: %q is not a %s status", status, kind)
	}
	return nil
}

func (p listParams) query() library.Query {
	dir, _ := filter.ParseDirection(p.Dir)
	return library.Query{
		Status:    p.Status,
		Search:    p.Search,
		Genres:    p.Genres,
		YearMin:   p.YearMin,
		YearMax:   p.YearMax,
		RatingMin: p.RatingMin,
		Sort:      filter.Field(p.Sort),
		Dir:       dir,
		Page:      pagination.Params{Page: p.Page, PageSize: p.PageSize},
	}
}

func (p listParams) discover() library.DiscoverQuery {
	dir, _ := filter.ParseDirection(p.Dir)
	return library.DiscoverQuery{
		Search:    p.Search,
		Page:      p.Page,
		Genres:    p.Genres,
		YearMin:   p.YearMin,
		YearMax:   p.YearMax,
		RatingMin: p.RatingMin,
		Sort:      filter.Field(p.Sort),
		Dir:       dir,
	}
}

// multi accepts a parameter repeated, comma separated, or both.
func multi(q url.Values, name string) []string {
	var out []string
	for _, v := range q[name] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func optInt(q url.Values, name string) (*int, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s: must be an integer", name)
	}
	return &n, nil
}

// validationError flattens validator errors into "field: rule" messages.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed %s", paramName(fe.StructField()), rule))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

var paramNames = map[string]string{
	"Status":    "status",
	"Search":    "q",
	"Genres":    "genre",
	"Networks":  "network",
	"YearMin":   "year_min",
	"YearMax":   "year_max",
	"RatingMin": "rating_min",
	"Sort":      "sort",
	"Dir":       "dir",
	"Page":      "page",
	"PageSize":  "page_size",
	"Source":    "source",
	"Kind":      "kind",
	"Resource":  "resource",
}

func paramName(field string) string {
	base, index, _ := strings.Cut(field, "[")
	if n, ok := paramNames[base]; ok {
		if index != "" {
			return n + "[" + index
		}
		return n
	}
	return field
}
