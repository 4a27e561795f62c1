package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/models"
)

func createPage(t *testing.T, env *testEnv, token string, body map[string]any) models.Page {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/admin/pages", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var page models.Page
	decodeJSON(t, rec, &page)
	return page
}

func TestCreatePage_AssignsIdentifiersAndTimestamps(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	page := createPage(t, env, token, map[string]any{
		"title": "About",
		"slug":  "about",
		"blocks": []map[string]any{
			{"type": "heading", "content": map[string]any{"text": "About us"}, "order": 0},
			{"type": "text", "content": map[string]any{"text": "Hello"}, "order": 1},
		},
		"published": true,
		"order":     2,
	})

	assert.NotEmpty(t, page.ID)
	assert.False(t, page.CreatedAt.IsZero())
	assert.Equal(t, page.CreatedAt, page.UpdatedAt)
	require.Len(t, page.Blocks, 2)
	for _, block := range page.Blocks {
		assert.NotEmpty(t, block.ID)
	}
	assert.Equal(t, models.BlockHeading, page.Blocks[0].Type)
	assert.Equal(t, 1, page.Blocks[1].Order)
}

func TestCreatePage_ResponseIsJSON(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/admin/pages", token, map[string]any{
		"title": "About", "slug": "about",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestCreatePage_DuplicateSlugIsConflict(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	first := createPage(t, env, token, map[string]any{
		"title": "About", "slug": "about", "published": true,
	})

	rec := env.do(t, http.MethodPost, "/admin/pages", token, map[string]any{
		"title": "About again", "slug": "about",
	})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	// The first page is still retrievable by slug
	rec = env.do(t, http.MethodGet, "/pages/about", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.Page
	decodeJSON(t, rec, &fetched)
	assert.Equal(t, first.ID, fetched.ID)
	assert.Equal(t, "About", fetched.Title)
}

func TestPublishedListing_HidesDrafts(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	createPage(t, env, token, map[string]any{
		"title": "Second", "slug": "second", "published": true, "order": 2,
	})
	createPage(t, env, token, map[string]any{
		"title": "Draft", "slug": "draft", "published": false, "order": 1,
	})
	createPage(t, env, token, map[string]any{
		"title": "First", "slug": "first", "published": true, "order": 0,
	})

	rec := env.do(t, http.MethodGet, "/pages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pages []models.Page
	decodeJSON(t, rec, &pages)
	require.Len(t, pages, 2)
	assert.Equal(t, "first", pages[0].Slug)
	assert.Equal(t, "second", pages[1].Slug)

	// The admin listing includes the draft
	rec = env.do(t, http.MethodGet, "/admin/pages", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Page
	decodeJSON(t, rec, &all)
	assert.Len(t, all, 3)
}

func TestPublishedListing_TiesKeepCreationOrder(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	slugs := []string{"one", "two", "three", "four", "five", "six", "seven", "eight"}
	for _, slug := range slugs {
		createPage(t, env, token, map[string]any{
			"title": slug, "slug": slug, "published": true, "order": 0,
		})
	}

	// Equal display orders keep creation order, on every read
	for run := 0; run < 5; run++ {
		rec := env.do(t, http.MethodGet, "/pages", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var pages []models.Page
		decodeJSON(t, rec, &pages)
		require.Len(t, pages, len(slugs))
		for i, page := range pages {
			assert.Equal(t, slugs[i], page.Slug, "run %d position %d", run, i)
		}
	}
}

func TestPageListing_TruncatesAtCap(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	now := time.Now().UTC()
	for i := 0; i < database.MaxPageResults+1; i++ {
		page := models.Page{
			ID:        uuid.New(),
			Title:     fmt.Sprintf("Page %d", i),
			Slug:      fmt.Sprintf("page-%d", i),
			Blocks:    []models.Block{},
			Published: true,
			Order:     i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, env.db.PageRepo().Add(&page))
	}

	rec := env.do(t, http.MethodGet, "/pages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pages []models.Page
	decodeJSON(t, rec, &pages)
	assert.Len(t, pages, database.MaxPageResults)

	rec = env.do(t, http.MethodGet, "/admin/pages", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &pages)
	assert.Len(t, pages, database.MaxPageResults)
}

func TestGetPageBySlug_UnpublishedLooksAbsent(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	createPage(t, env, token, map[string]any{
		"title": "Hidden", "slug": "hidden", "published": false,
	})

	rec := env.do(t, http.MethodGet, "/pages/hidden", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/pages/never-existed", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePage_OnlyPresentFieldsChange(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	page := createPage(t, env, token, map[string]any{
		"title": "Services", "slug": "services",
		"blocks": []map[string]any{
			{"type": "text", "content": map[string]any{"text": "We read cards"}, "order": 0},
		},
		"published": true,
		"order":     5,
	})

	time.Sleep(10 * time.Millisecond)

	rec := env.do(t, http.MethodPut, "/admin/pages/"+page.ID.String(), token, map[string]any{
		"title": "Our Services",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Page
	decodeJSON(t, rec, &updated)
	assert.Equal(t, "Our Services", updated.Title)
	assert.Equal(t, "services", updated.Slug)
	assert.True(t, updated.Published)
	assert.Equal(t, 5, updated.Order)
	require.Len(t, updated.Blocks, 1)
	assert.Equal(t, page.Blocks[0].ID, updated.Blocks[0].ID)
	assert.Equal(t, page.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(page.UpdatedAt))
}

func TestUpdatePage_SlugCollisionIsConflict(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	createPage(t, env, token, map[string]any{"title": "About", "slug": "about"})
	page := createPage(t, env, token, map[string]any{"title": "Contact", "slug": "contact"})

	rec := env.do(t, http.MethodPut, "/admin/pages/"+page.ID.String(), token, map[string]any{
		"slug": "about",
	})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestUpdatePage_MissingPage(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/admin/pages/6f1edc2a-0f0b-4c2c-a2a1-9d9e5a3b4c5d", token, map[string]any{
		"title": "X",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/admin/pages/not-a-uuid", token, map[string]any{
		"title": "X",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePage_RemovesPageAndBlocks(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	page := createPage(t, env, token, map[string]any{
		"title": "Temp", "slug": "temp", "published": true,
	})

	rec := env.do(t, http.MethodDelete, "/admin/pages/"+page.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/pages/temp", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Deleting again is a not-found error
	rec = env.do(t, http.MethodDelete, "/admin/pages/"+page.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
