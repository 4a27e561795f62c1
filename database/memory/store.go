// Package memory provides in-memory implementations of the database
// repositories. They honor the same uniqueness and not-found contracts as
// the SQL implementations and back the unit tests; nothing is persisted.
package memory

import "github.com/lunaria-site/cms-backend/database"

// NewDatabase builds a database.Database backed entirely by in-memory
// repositories.
func NewDatabase() database.Database {
	return database.NewWithRepos(
		NewAccountRepo(),
		NewPageRepo(),
		NewMenuItemRepo(),
		NewContactRepo(),
		NewSettingsRepo(),
		NewHomeContentRepo(),
		NewMediaRepo(),
		NewBlogPostRepo(),
	)
}
