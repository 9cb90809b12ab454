package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Donadams50/TechTestMarch25/models"
)

// MemoryStore is an in-process PostStore used by tests. It mirrors the Mongo
// implementation's observable behavior, including the text-search weighting
// (title 3, content 1) and idempotent delete-many.
type MemoryStore struct {
	mu    sync.RWMutex
	seq   int64
	posts map[string]*memEntry
}

type memEntry struct {
	post models.Post
	seq  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{posts: make(map[string]*memEntry)}
}

func (s *MemoryStore) Create(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.StampNew(time.Now().UTC())
	post.ID = primitive.NewObjectID()
	s.seq++
	s.posts[post.ID.Hex()] = &memEntry{post: *post, seq: s.seq}
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	post := e.post
	return &post, nil
}

func (s *MemoryStore) Find(_ context.Context, opts ListOptions) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.matching(opts.Tag)
	// Newest first, insertion order as tie-break.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].post.CreatedAt.Equal(entries[j].post.CreatedAt) {
			return entries[i].post.CreatedAt.After(entries[j].post.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})
	return window(entries, opts.Skip, opts.Limit), nil
}

func (s *MemoryStore) Count(_ context.Context, tag string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.matching(tag))), nil
}

func (s *MemoryStore) UpdateByID(_ context.Context, id string, upd models.PostUpdate) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.posts[id]
	if !ok {
		return nil, ErrPostNotFound
	}
	if upd.Title != nil {
		e.post.Title = *upd.Title
	}
	if upd.Content != nil {
		e.post.Content = *upd.Content
	}
	if upd.Tags != nil {
		e.post.Tags = *upd.Tags
	}
	e.post.Touch(time.Now().UTC())
	post := e.post
	return &post, nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrPostNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *MemoryStore) FindIDsByTag(_ context.Context, tag string, limit int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.matching(tag)
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	ids := []string{}
	for _, e := range entries {
		if int64(len(ids)) >= limit {
			break
		}
		ids = append(ids, e.post.ID.Hex())
	}
	return ids, nil
}

func (s *MemoryStore) DeleteManyByIDs(_ context.Context, ids []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := s.posts[id]; ok {
			delete(s.posts, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) Search(_ context.Context, term string, skip, limit int64) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scored := s.scoredMatches(term)
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].entry.seq > scored[j].entry.seq
	})
	entries := make([]*memEntry, 0, len(scored))
	for _, m := range scored {
		entries = append(entries, m.entry)
	}
	return window(entries, skip, limit), nil
}

func (s *MemoryStore) SearchCount(_ context.Context, term string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.scoredMatches(term))), nil
}

func (s *MemoryStore) matching(tag string) []*memEntry {
	entries := []*memEntry{}
	for _, e := range s.posts {
		if tag == "" || hasTag(e.post.Tags, tag) {
			entries = append(entries, e)
		}
	}
	return entries
}

type scoredEntry struct {
	entry *memEntry
	score int
}

func (s *MemoryStore) scoredMatches(term string) []scoredEntry {
	scored := []scoredEntry{}
	for _, e := range s.posts {
		if sc := textScore(&e.post, term); sc > 0 {
			scored = append(scored, scoredEntry{entry: e, score: sc})
		}
	}
	return scored
}

// textScore approximates the weighted text index: each term token found in
// the title counts 3, in the content counts 1.
func textScore(p *models.Post, term string) int {
	score := 0
	title := strings.ToLower(p.Title)
	content := strings.ToLower(p.Content)
	for _, tok := range strings.Fields(strings.ToLower(term)) {
		for _, w := range strings.Fields(title) {
			if strings.Trim(w, ".,!?;:\"'()") == tok {
				score += 3
			}
		}
		for _, w := range strings.Fields(content) {
			if strings.Trim(w, ".,!?;:\"'()") == tok {
				score++
			}
		}
	}
	return score
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func window(entries []*memEntry, skip, limit int64) []models.Post {
	posts := []models.Post{}
	if skip < 0 {
		skip = 0
	}
	for i := skip; i < int64(len(entries)); i++ {
		if limit > 0 && int64(len(posts)) >= limit {
			break
		}
		posts = append(posts, entries[i].post)
	}
	return posts
}
