package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Donadams50/TechTestMarch25/models"
	"github.com/Donadams50/TechTestMarch25/query"
	"github.com/Donadams50/TechTestMarch25/store"
	"github.com/Donadams50/TechTestMarch25/utils"
)

// purgeBatchSize bounds each find/delete pair during a tag purge so no single
// store operation can run into the server's time or size limits.
const purgeBatchSize = 1000

const minTitleLength = 5

// PostController serves the /posts CRUD, search, and bulk-delete endpoints
// against an injected document store.
type PostController struct {
	store store.PostStore
}

func NewPostController(st store.PostStore) *PostController {
	return &PostController{store: st}
}

type createPostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// CreatePost handles POST /posts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req createPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, utils.NewAPIError(http.StatusBadRequest, "Title and content are required"))
		return
	}

	title := strings.TrimSpace(utils.Sanitize(req.Title))
	content := utils.Sanitize(req.Content)
	if title == "" || content == "" {
		fail(ctx, utils.NewAPIError(http.StatusBadRequest, "Title and content are required"))
		return
	}
	if len([]rune(title)) < minTitleLength {
		fail(ctx, utils.NewAPIError(http.StatusBadRequest,
			fmt.Sprintf("Title must be at least %d characters", minTitleLength)))
		return
	}

	post := &models.Post{Title: title, Content: content, Tags: req.Tags}
	if err := p.store.Create(ctx.Request.Context(), post); err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// ListPosts handles GET /posts with optional tag filter and pagination. The
// count and the window are two independent reads; metadata can be stale under
// concurrent writes.
func (p *PostController) ListPosts(ctx *gin.Context) {
	q := query.ParseList(ctx.Request.URL.Query())
	rctx := ctx.Request.Context()

	total, err := p.store.Count(rctx, q.Tag)
	if err != nil {
		fail(ctx, err)
		return
	}
	skip, limit := q.Window()
	posts, err := p.store.Find(rctx, store.ListOptions{Tag: q.Tag, Skip: skip, Limit: limit})
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": query.Paginate(total, q.Page, q.Limit),
	})
}

// GetPost handles GET /posts/:id. ValidateID has already run.
func (p *PostController) GetPost(ctx *gin.Context) {
	post, err := p.store.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		failNotFound(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT /posts/:id as a full or partial update. The store
// refreshes updatedAt even when no field value changes.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var upd models.PostUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		fail(ctx, utils.NewAPIError(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	if upd.Title != nil {
		title := strings.TrimSpace(utils.Sanitize(*upd.Title))
		if len([]rune(title)) < minTitleLength {
			fail(ctx, utils.NewAPIError(http.StatusBadRequest,
				fmt.Sprintf("Title must be at least %d characters", minTitleLength)))
			return
		}
		upd.Title = &title
	}
	if upd.Content != nil {
		content := utils.Sanitize(*upd.Content)
		if content == "" {
			fail(ctx, utils.NewAPIError(http.StatusBadRequest, "Content cannot be empty"))
			return
		}
		upd.Content = &content
	}

	post, err := p.store.UpdateByID(ctx.Request.Context(), ctx.Param("id"), upd)
	if err != nil {
		failNotFound(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /posts/:id.
func (p *PostController) DeletePost(ctx *gin.Context) {
	if err := p.store.DeleteByID(ctx.Request.Context(), ctx.Param("id")); err != nil {
		failNotFound(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// SearchPosts handles GET /posts/search/all, ranked by the store's relevance
// score. The score itself is never serialized.
func (p *PostController) SearchPosts(ctx *gin.Context) {
	sq, err := query.ParseSearch(ctx.Request.URL.Query())
	if err != nil {
		fail(ctx, err)
		return
	}
	rctx := ctx.Request.Context()

	total, err := p.store.SearchCount(rctx, sq.Term)
	if err != nil {
		fail(ctx, err)
		return
	}
	skip, limit := sq.Window()
	posts, err := p.store.Search(rctx, sq.Term, skip, limit)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":       posts,
		"pagination": query.Paginate(total, sq.Page, sq.Limit),
	})
}

// DeletePostsByTag handles DELETE /posts?tag=... as a batched hard delete.
func (p *PostController) DeletePostsByTag(ctx *gin.Context) {
	tag := strings.TrimSpace(ctx.Query("tag"))
	if tag == "" {
		fail(ctx, utils.NewAPIError(http.StatusBadRequest, "Tag query parameter is required"))
		return
	}

	deleted, err := p.purgeTag(ctx.Request.Context(), tag)
	if err != nil {
		fail(ctx, err)
		return
	}
	if deleted == 0 {
		fail(ctx, utils.NewAPIError(http.StatusBadRequest, "No posts found with the given tag"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Deleted %d post(s) with tag '%s'", deleted, tag),
		"deletedCount": deleted,
	})
}

// purgeTag deletes every post carrying tag in bounded batches: fetch up to
// purgeBatchSize matching ids, delete them by id set, repeat until a fetch
// comes back empty. Each fresh fetch runs against the already-shrunk
// collection, so the loop terminates in at most ceil(N/batch)+1 iterations
// absent concurrent same-tag inserts. Concurrent purges of the same tag are
// safe because DeleteManyByIDs is idempotent; one caller may just report a
// lower count.
func (p *PostController) purgeTag(ctx context.Context, tag string) (int64, error) {
	var deleted int64
	for {
		ids, err := p.store.FindIDsByTag(ctx, tag, purgeBatchSize)
		if err != nil {
			return deleted, err
		}
		if len(ids) == 0 {
			return deleted, nil
		}
		n, err := p.store.DeleteManyByIDs(ctx, ids)
		if err != nil {
			return deleted, err
		}
		deleted += n
		// A store that reports nothing deleted for a non-empty batch would
		// otherwise spin this loop forever.
		if n == 0 {
			return deleted, nil
		}
	}
}

// fail records err for the error reporter middleware and stops the chain.
func fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.Abort()
}

// failNotFound maps the store's not-found sentinel to a 404 and passes
// anything else through as an internal error.
func failNotFound(ctx *gin.Context, err error) {
	if errors.Is(err, store.ErrPostNotFound) {
		err = utils.NewAPIError(http.StatusNotFound, "Post not found")
	}
	fail(ctx, err)
}
