package handlers

const (
	DefaultPageSize = 3
	MaxPageSize     = 100
)

// PageParams is the shared pagination query: 1-based page number and a page
// size defaulting to 3 and clamped to 100.
type PageParams struct {
	Page     int `query:"page" doc:"1-based page number"`
	PageSize int `query:"page_size" doc:"Items per page, capped at 100"`
}

func (p PageParams) Limits() (offset, limit int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return (page - 1) * size, size
}
