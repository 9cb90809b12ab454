// Package query translates the loosely typed HTTP query surface into
// validated store arguments. Everything here is pure: raw parameters in,
// bounded intent out.
package query

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Donadams50/TechTestMarch25/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxSearchLimit is a hard cap on the search window. Whatever the caller
	// sends, a single search fetch never asks the store for more than this.
	MaxSearchLimit = 50
)

// List is the validated intent of a listing request.
type List struct {
	Tag   string
	Page  int
	Limit int
}

// Search is the validated intent of a full-text search request.
type Search struct {
	Term  string
	Page  int
	Limit int
}

// ParseList never fails: missing or malformed values fall back to defaults,
// page and limit are floored at 1.
func ParseList(q url.Values) List {
	return List{
		Tag:   q.Get("tag"),
		Page:  atLeast(parseInt(q.Get("page"), DefaultPage), 1),
		Limit: atLeast(parseInt(q.Get("limit"), DefaultLimit), 1),
	}
}

// ParseSearch requires a non-blank q and clamps limit into [1, MaxSearchLimit].
func ParseSearch(q url.Values) (Search, error) {
	term := strings.TrimSpace(q.Get("q"))
	if term == "" {
		return Search{}, utils.NewAPIError(http.StatusBadRequest, "Search query (q) is required")
	}
	limit := parseInt(q.Get("limit"), DefaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	return Search{
		Term:  term,
		Page:  atLeast(parseInt(q.Get("page"), DefaultPage), 1),
		Limit: limit,
	}, nil
}

// Window converts the page into the store's skip/take pair.
func (l List) Window() (skip, limit int64) {
	return int64(l.Page-1) * int64(l.Limit), int64(l.Limit)
}

func (s Search) Window() (skip, limit int64) {
	return int64(s.Page-1) * int64(s.Limit), int64(s.Limit)
}

func parseInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func atLeast(n, floor int) int {
	if n < floor {
		return floor
	}
	return n
}
