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

func TestMenuItems_CreateListDelete(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/admin/menu", token, map[string]any{
		"label": "Contact", "url": "/contact", "order": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/admin/menu", token, map[string]any{
		"label": "Home", "url": "/", "order": 0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var home models.MenuItem
	decodeJSON(t, rec, &home)

	rec = env.do(t, http.MethodPost, "/admin/menu", token, map[string]any{
		"label": "Readings", "url": "/readings", "order": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The menu is public and sorted by display order
	rec = env.do(t, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MenuItem
	decodeJSON(t, rec, &items)
	require.Len(t, items, 3)
	assert.Equal(t, "Home", items[0].Label)
	assert.Equal(t, "Readings", items[1].Label)
	assert.Equal(t, "Contact", items[2].Label)

	rec = env.do(t, http.MethodDelete, "/admin/menu/"+home.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/menu", "", nil)
	decodeJSON(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "Readings", items[0].Label)
}

func TestCreateMenuItem_Validation(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/admin/menu", token, map[string]any{"url": "/x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/admin/menu", token, map[string]any{"label": "X"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMenuItem_Missing(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodDelete, "/admin/menu/1b671a64-40d5-491e-99b0-da01ff1f3341", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/admin/menu/nope", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMenuListing_TruncatesAtCap(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < database.MaxMenuItemResults+1; i++ {
		item := models.MenuItem{
			ID:        uuid.New(),
			Label:     fmt.Sprintf("Item %d", i),
			URL:       fmt.Sprintf("/item-%d", i),
			Order:     i,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, env.db.MenuItemRepo().Add(&item))
	}

	rec := env.do(t, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MenuItem
	decodeJSON(t, rec, &items)
	assert.Len(t, items, database.MaxMenuItemResults)
}

func TestMediaItems_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/admin/media", token, map[string]any{
		"filename": "moon.jpg",
		"url":      "/media/moon.jpg",
		"type":     "image",
		"size":     20480,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item models.MediaItem
	decodeJSON(t, rec, &item)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, int64(20480), item.Size)

	rec = env.do(t, http.MethodPost, "/admin/media", token, map[string]any{
		"url": "/media/cards.mp4", "type": "video",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var second models.MediaItem
	decodeJSON(t, rec, &second)
	// Absent filename gets the placeholder
	assert.Equal(t, "unknown", second.Filename)

	rec = env.do(t, http.MethodGet, "/admin/media", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MediaItem
	decodeJSON(t, rec, &items)
	require.Len(t, items, 2)
}

func TestMediaItems_DefaultTypeIsImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/admin/media", token, map[string]any{
		"filename": "sun.png", "url": "/media/sun.png",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.MediaItem
	decodeJSON(t, rec, &item)
	assert.Equal(t, "image", item.Type)
}
