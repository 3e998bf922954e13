package query

// Pagination defaults and bounds. Requests outside the allowed page size range
// fall back to the default instead of failing.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// SearchMinTermLength and SearchLimit apply to search/{term} style
	// lookups, which cap results instead of paginating.
	SearchMinTermLength = 2
	SearchLimit         = 20
)

// Params holds normalized pagination input.
type Params struct {
	Page     int
	PageSize int
}

// NewParams normalizes raw page/pageSize input: page is clamped to >= 1 and
// pageSize outside [1, MaxPageSize] resets to DefaultPageSize.
func NewParams(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo is the sizing metadata returned alongside every page.
type PageInfo struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPageInfo computes page metadata for a total row count.
func NewPageInfo(totalCount int64, p Params) PageInfo {
	totalPages := int((totalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
	return PageInfo{
		TotalCount: totalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}
