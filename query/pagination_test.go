package query_test

import (
	"testing"

	"github.com/Donadams50/TechTestMarch25/query"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, limit    int
		wantTotalPages int64
		wantHasNext    bool
	}{
		{"empty collection", 0, 1, 10, 0, false},
		{"single partial page", 5, 1, 10, 1, false},
		{"exact multiple", 20, 2, 10, 2, false},
		{"middle page has next", 25, 2, 10, 3, true},
		{"last page has no next", 25, 3, 10, 3, false},
		{"page beyond the data", 25, 9, 10, 3, false},
		{"limit one", 3, 1, 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := query.Paginate(tt.total, tt.page, tt.limit)
			if p.Total != tt.total || p.Page != tt.page || p.Limit != tt.limit {
				t.Errorf("echoed fields = {%d %d %d}, want {%d %d %d}",
					p.Total, p.Page, p.Limit, tt.total, tt.page, tt.limit)
			}
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
		})
	}
}
