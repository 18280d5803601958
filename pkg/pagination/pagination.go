// Package pagination slices in-memory result sets into pages.
package pagination

// Params selects a page. PageSize 0 means everything on one page.
type Params struct {
	Page     int
	PageSize int
}

// CalculateOffsetLimit returns the slice bounds for the page.
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize <= 0 {
		return 0, 0
	}
	page := max(p.Page, 1)
	offset = (page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

// BuildMeta describes the page within totalItems.
func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	} else if totalItems > 0 {
		totalPages = 1
	}
	return Meta{
		Page:       max(p.Page, 1),
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Meta is returned alongside a page.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Slice returns the page of items selected by p. Out-of-range pages are empty.
func Slice[T any](items []T, p Params) []T {
	offset, limit := p.CalculateOffsetLimit()
	if limit == 0 {
		return items
	}
	if offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}
