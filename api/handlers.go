package api

import (
	"github.com/lunaria-site/cms-backend/auth"
	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens *auth.TokenService, notifier services.Notifier) *routeHandlers {
	return &routeHandlers{
		authHandler:        newAuthHandler(db.AccountRepo(), tokens),
		pageHandler:        newPageHandler(db.PageRepo()),
		menuHandler:        newMenuHandler(db.MenuItemRepo()),
		contactHandler:     newContactHandler(db.ContactRepo(), db.SettingsRepo(), notifier),
		settingsHandler:    newSettingsHandler(db.SettingsRepo()),
		homeContentHandler: newHomeContentHandler(db.HomeContentRepo()),
		mediaHandler:       newMediaHandler(db.MediaRepo()),
		blogPostHandler:    newBlogPostHandler(db.BlogPostRepo()),
	}
}
