package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	pageHandler        pageHandler
	menuHandler        menuHandler
	contactHandler     contactHandler
	settingsHandler    settingsHandler
	homeContentHandler homeContentHandler
	mediaHandler       mediaHandler
	blogPostHandler    blogPostHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
