package store

import (
	"context"
	"errors"

	"github.com/Donadams50/TechTestMarch25/models"
)

// ErrPostNotFound is returned when an operation targets an id that does not
// exist (or no longer exists) in the collection.
var ErrPostNotFound = errors.New("post not found")

// ListOptions describes a filtered, windowed listing. Tag filters by set
// membership when non-empty. Results are always ordered newest first.
type ListOptions struct {
	Tag   string
	Skip  int64
	Limit int64
}

// PostStore is the document-store contract the handlers are written against.
// Implementations own timestamp maintenance: Create stamps both timestamps,
// UpdateByID refreshes updatedAt on every call, matched fields or not.
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Find(ctx context.Context, opts ListOptions) ([]models.Post, error)
	Count(ctx context.Context, tag string) (int64, error)
	UpdateByID(ctx context.Context, id string, upd models.PostUpdate) (*models.Post, error)
	DeleteByID(ctx context.Context, id string) error

	// FindIDsByTag fetches at most limit ids of posts carrying tag, ids only.
	// Together with DeleteManyByIDs it backs the batched tag purge.
	FindIDsByTag(ctx context.Context, tag string, limit int64) ([]string, error)
	// DeleteManyByIDs removes every post whose id is in ids and reports how
	// many were actually deleted. Already-deleted ids are a no-op.
	DeleteManyByIDs(ctx context.Context, ids []string) (int64, error)

	// Search runs the weighted full-text index (title 3, content 1) and
	// returns the window ordered by relevance, best match first. The score
	// never leaves the store.
	Search(ctx context.Context, term string, skip, limit int64) ([]models.Post, error)
	SearchCount(ctx context.Context, term string) (int64, error)
}
