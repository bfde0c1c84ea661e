package auth

import "errors"

// Common authentication service errors
var (
	// ErrMalformedToken indicates the token string is not a structurally
	// valid JWT.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrUnsupportedToken indicates the token uses a signing algorithm the
	// service does not accept.
	ErrUnsupportedToken = errors.New("unsupported authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidSignature indicates the token signature does not verify
	// against the configured key.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrEmptyClaims indicates the token parsed but carries no usable
	// subject claim.
	ErrEmptyClaims = errors.New("token claims are empty")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a login attempt with an unknown
	// identifier or a wrong password. The two cases are deliberately not
	// distinguished.
	ErrInvalidCredentials = errors.New("invalid username/email or password")
)
