package auth

import "errors"

// Token-related errors.
var (
	// ErrTokenMalformed indicates the token or its payload could not be parsed.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenInvalidSig indicates the token signature is invalid.
	ErrTokenInvalidSig = errors.New("token signature is invalid")

	// ErrTokenExpired indicates the token has expired.
	ErrTokenExpired = errors.New("token has expired")
)
