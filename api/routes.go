package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface and the token-protected admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/pages", handlers.pageHandler.getPublishedPages())
		r.Get("/pages/{slug}", handlers.pageHandler.getPublishedPageBySlug())
		r.Get("/menu", handlers.menuHandler.getMenuItems())
		r.Get("/settings", handlers.settingsHandler.getSettings())
		r.Get("/home-content", handlers.homeContentHandler.getHomeContent())
		r.Get("/blog", handlers.blogPostHandler.getPublishedBlogPosts())
		r.Get("/blog/{postID}", handlers.blogPostHandler.getPublishedBlogPost())
		r.Post("/contact", handlers.contactHandler.submitContact())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/auth/me", handlers.authHandler.me())

		r.Get("/admin/pages", handlers.pageHandler.getAllPages())
		r.Post("/admin/pages", handlers.pageHandler.createPage())
		r.Put("/admin/pages/{pageID}", handlers.pageHandler.updatePage())
		r.Delete("/admin/pages/{pageID}", handlers.pageHandler.deletePage())

		r.Post("/admin/menu", handlers.menuHandler.createMenuItem())
		r.Delete("/admin/menu/{itemID}", handlers.menuHandler.deleteMenuItem())

		r.Get("/admin/contacts", handlers.contactHandler.getContacts())
		r.Put("/admin/contacts/{contactID}/read", handlers.contactHandler.markContactRead())

		r.Put("/admin/settings", handlers.settingsHandler.updateSettings())
		r.Put("/admin/home-content", handlers.homeContentHandler.updateHomeContent())

		r.Get("/admin/media", handlers.mediaHandler.getMediaItems())
		r.Post("/admin/media", handlers.mediaHandler.createMediaItem())

		r.Get("/admin/blog", handlers.blogPostHandler.getAllBlogPosts())
		r.Post("/admin/blog", handlers.blogPostHandler.createBlogPost())
		r.Put("/admin/blog/{postID}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/admin/blog/{postID}", handlers.blogPostHandler.deleteBlogPost())
	})
}
