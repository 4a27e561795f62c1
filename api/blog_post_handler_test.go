package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaria-site/cms-backend/models"
)

func createBlogPost(t *testing.T, env *testEnv, token string, body map[string]any) models.BlogPost {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/admin/blog", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post models.BlogPost
	decodeJSON(t, rec, &post)
	return post
}

func TestBlogPosts_DraftsHiddenFromPublic(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	published := createBlogPost(t, env, token, map[string]any{
		"title": "Full moon rituals", "content": "Light a candle.", "published": true,
		"tags": []string{"rituals", "moon"},
	})
	draft := createBlogPost(t, env, token, map[string]any{
		"title": "Unfinished thoughts", "content": "wip",
	})

	rec := env.do(t, http.MethodGet, "/blog", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []models.BlogPost
	decodeJSON(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, published.ID, posts[0].ID)

	// The draft is invisible by ID as well
	rec = env.do(t, http.MethodGet, "/blog/"+draft.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/blog/"+published.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.BlogPost
	decodeJSON(t, rec, &fetched)
	assert.Equal(t, "Full moon rituals", fetched.Title)
	assert.Equal(t, []string{"rituals", "moon"}, fetched.Tags)

	// Management view sees both
	rec = env.do(t, http.MethodGet, "/admin/blog", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &posts)
	assert.Len(t, posts, 2)
}

func TestCreateBlogPost_Validation(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/admin/blog", token, map[string]any{"content": "body"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/admin/blog", token, map[string]any{"title": "T"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBlogPost_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	post := createBlogPost(t, env, token, map[string]any{
		"title": "Tarot basics", "content": "Start with the major arcana.",
		"excerpt": "A primer", "tags": []string{"tarot"},
	})

	time.Sleep(10 * time.Millisecond)

	rec := env.do(t, http.MethodPut, "/admin/blog/"+post.ID.String(), token, map[string]any{
		"published": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.BlogPost
	decodeJSON(t, rec, &updated)
	assert.True(t, updated.Published)
	assert.Equal(t, "Tarot basics", updated.Title)
	assert.Equal(t, "A primer", updated.Excerpt)
	assert.Equal(t, []string{"tarot"}, updated.Tags)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))

	// Publishing made it visible
	rec = env.do(t, http.MethodGet, "/blog/"+post.ID.String(), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateBlogPost_Missing(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/admin/blog/1b671a64-40d5-491e-99b0-da01ff1f3341", token, map[string]any{
		"title": "X",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBlogPost(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	post := createBlogPost(t, env, token, map[string]any{
		"title": "Ephemeral", "content": "Soon gone.", "published": true,
	})

	rec := env.do(t, http.MethodDelete, "/admin/blog/"+post.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/blog/"+post.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/admin/blog/"+post.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublishedBlogListing_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	older := createBlogPost(t, env, token, map[string]any{
		"title": "First post", "content": "a", "published": true,
	})
	time.Sleep(5 * time.Millisecond)
	newer := createBlogPost(t, env, token, map[string]any{
		"title": "Second post", "content": "b", "published": true,
	})

	rec := env.do(t, http.MethodGet, "/blog", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []models.BlogPost
	decodeJSON(t, rec, &posts)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
}
