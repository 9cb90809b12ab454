package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/Donadams50/TechTestMarch25/models"
	"github.com/Donadams50/TechTestMarch25/store"
)

func seed(t *testing.T, s *store.MemoryStore, title, content string, tags ...string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: content, Tags: tags}
	if err := s.Create(context.Background(), post); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	return post
}

func TestCreateStampsAndAssignsID(t *testing.T) {
	s := store.NewMemoryStore()
	post := seed(t, s, "Hello World", "body")

	if post.ID.IsZero() {
		t.Fatal("Create did not assign an id")
	}
	if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
		t.Fatal("Create did not stamp timestamps")
	}
	if post.UpdatedAt.Before(post.CreatedAt) {
		t.Error("updatedAt before createdAt")
	}
	if post.Tags == nil {
		t.Error("tags should default to an empty slice, not nil")
	}

	got, err := s.FindByID(context.Background(), post.ID.Hex())
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Title != "Hello World" || got.Content != "body" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestUpdateRefreshesUpdatedAtOnNoOp(t *testing.T) {
	s := store.NewMemoryStore()
	post := seed(t, s, "Hello World", "body")
	before := post.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	same := "body"
	got, err := s.UpdateByID(context.Background(), post.ID.Hex(), models.PostUpdate{Content: &same})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if !got.UpdatedAt.After(before) {
		t.Errorf("updatedAt %v not after %v for a no-op update", got.UpdatedAt, before)
	}
	if !got.CreatedAt.Equal(post.CreatedAt) {
		t.Error("createdAt must never change on update")
	}
}

func TestFindSortsNewestFirst(t *testing.T) {
	s := store.NewMemoryStore()
	for i := 0; i < 5; i++ {
		seed(t, s, "Title number x", "body", "go")
	}
	posts, err := s.Find(context.Background(), store.ListOptions{Tag: "go", Skip: 0, Limit: 10})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("got %d posts, want 5", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatal("posts not sorted newest first")
		}
	}
}

func TestFindIDsByTagRespectsLimit(t *testing.T) {
	s := store.NewMemoryStore()
	for i := 0; i < 7; i++ {
		seed(t, s, "Tagged title", "body", "bulk")
	}
	seed(t, s, "Other title", "body", "keep")

	ids, err := s.FindIDsByTag(context.Background(), "bulk", 3)
	if err != nil {
		t.Fatalf("FindIDsByTag failed: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("got %d ids, want 3", len(ids))
	}
}

func TestDeleteManyByIDsIsIdempotent(t *testing.T) {
	s := store.NewMemoryStore()
	a := seed(t, s, "First title", "body", "bulk")
	b := seed(t, s, "Second title", "body", "bulk")
	ids := []string{a.ID.Hex(), b.ID.Hex()}

	n, err := s.DeleteManyByIDs(context.Background(), ids)
	if err != nil {
		t.Fatalf("DeleteManyByIDs failed: %v", err)
	}
	if n != 2 {
		t.Errorf("first delete removed %d, want 2", n)
	}

	n, err = s.DeleteManyByIDs(context.Background(), ids)
	if err != nil {
		t.Fatalf("second DeleteManyByIDs failed: %v", err)
	}
	if n != 0 {
		t.Errorf("repeat delete removed %d, want 0", n)
	}
}

func TestSearchRanksTitleAboveContent(t *testing.T) {
	s := store.NewMemoryStore()
	seed(t, s, "Cooking pasta", "a post about golang internals")
	titleHit := seed(t, s, "Understanding golang", "nothing relevant here")
	seed(t, s, "Gardening tips", "no match at all")

	posts, err := s.Search(context.Background(), "golang", 0, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d results, want 2", len(posts))
	}
	if posts[0].ID != titleHit.ID {
		t.Errorf("title match should rank first, got %q", posts[0].Title)
	}

	total, err := s.SearchCount(context.Background(), "golang")
	if err != nil {
		t.Fatalf("SearchCount failed: %v", err)
	}
	if total != 2 {
		t.Errorf("SearchCount = %d, want 2", total)
	}
}

func TestDeleteByIDNotFound(t *testing.T) {
	s := store.NewMemoryStore()
	post := seed(t, s, "Hello World", "body")

	if err := s.DeleteByID(context.Background(), post.ID.Hex()); err != nil {
		t.Fatalf("DeleteByID failed: %v", err)
	}
	if err := s.DeleteByID(context.Background(), post.ID.Hex()); err != store.ErrPostNotFound {
		t.Errorf("second delete err = %v, want ErrPostNotFound", err)
	}
	if _, err := s.FindByID(context.Background(), post.ID.Hex()); err != store.ErrPostNotFound {
		t.Errorf("FindByID after delete err = %v, want ErrPostNotFound", err)
	}
}
