package model

// Identity is the authenticated user as reported by the identity provider.
// It is resolved from the access token on every protected request; nothing is
// cached between requests.
type Identity struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}
