package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaria-site/cms-backend/models"
)

func TestGetSettings_DefaultsBeforeFirstWrite(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.Settings
	decodeJSON(t, rec, &settings)
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, "Lunaria", settings.SiteTitle)
	assert.NotNil(t, settings.SocialLinks)

	// Reading must not have persisted the defaults
	_, err := env.db.SettingsRepo().Get()
	assert.Error(t, err)
}

func TestUpdateSettings_MergesOnlySuppliedFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/admin/settings", token, map[string]any{
		"theme":       "mystical",
		"admin_email": "owner@lunaria.example",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.Settings
	decodeJSON(t, rec, &settings)
	assert.Equal(t, "mystical", settings.Theme)
	assert.Equal(t, "owner@lunaria.example", settings.AdminEmail)
	// Fields not named in the update keep their default values
	assert.Equal(t, "Lunaria", settings.SiteTitle)

	rec = env.do(t, http.MethodPut, "/admin/settings", token, map[string]any{
		"site_title": "Lunaria Tarot",
		"social_links": map[string]string{
			"instagram": "https://instagram.com/lunaria",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/settings", "", nil)
	decodeJSON(t, rec, &settings)
	assert.Equal(t, "Lunaria Tarot", settings.SiteTitle)
	assert.Equal(t, "mystical", settings.Theme)
	assert.Equal(t, "https://instagram.com/lunaria", settings.SocialLinks["instagram"])
}

func TestUpdateSettings_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/admin/settings", "", map[string]any{
		"theme": "dark",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetHomeContent_DefaultsBeforeFirstWrite(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/home-content", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var content models.HomeContent
	decodeJSON(t, rec, &content)
	assert.Equal(t, models.HomeContentID, content.ID)
	assert.Equal(t, "Welcome", content.HeroTitle)
	assert.NotNil(t, content.Sections)
}

func TestUpdateHomeContent_MergesOnlySuppliedFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/admin/home-content", token, map[string]any{
		"hero_title":    "Readings by moonlight",
		"hero_subtitle": "Book a session",
		"sections": []map[string]any{
			{"kind": "testimonial", "text": "Wonderful reading"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPut, "/admin/home-content", token, map[string]any{
		"hero_image": "/media/moon.jpg",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/home-content", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var content models.HomeContent
	decodeJSON(t, rec, &content)
	assert.Equal(t, "Readings by moonlight", content.HeroTitle)
	assert.Equal(t, "Book a session", content.HeroSubtitle)
	assert.Equal(t, "/media/moon.jpg", content.HeroImage)
	require.Len(t, content.Sections, 1)
	assert.Equal(t, "testimonial", content.Sections[0]["kind"])
}
