package service

// SessionVerifier checks operator session tokens for gated routes.
type SessionVerifier interface {
	// VerifySession validates a session token and returns the operator
	// subject, or an error when the token is invalid or expired.
	VerifySession(token string) (string, error)
}
