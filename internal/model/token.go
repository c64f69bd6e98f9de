package model

// TokenManager generates and validates bearer tokens.
type TokenManager interface {
	Generate(userID int64) (string, error)
	// Parse validates the token and extracts the user ID. Failures are
	// reported as ErrTokenExpired, ErrTokenSignatureInvalid or
	// ErrTokenMalformed (possibly wrapped).
	Parse(token string) (int64, error)
}
