package query

// Pagination is attached to every listing and search response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
}

// Paginate derives page metadata from an independently obtained total.
// Known limitation: the total and the fetched window come from two separate
// reads, so concurrent writes can leave TotalPages or HasNext stale by the
// time the client acts on them.
func Paginate(total int64, page, limit int) Pagination {
	p := Pagination{Total: total, Page: page, Limit: limit}
	if total > 0 {
		p.TotalPages = (total + int64(limit) - 1) / int64(limit)
	}
	p.HasNext = int64(page)*int64(limit) < total
	return p
}
