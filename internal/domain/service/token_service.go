package service

// TokenInspector checks bearer tokens on the client side, before they are sent.
type TokenInspector interface {
	// CheckToken returns an auth error when the token is empty or already expired.
	CheckToken(token string) error

	// CustomerID returns the customer the token was issued to, or "" for opaque tokens.
	CustomerID(token string) string
}
