package types

// UserCredential holds the stored authentication material for one account.
// It is the only record kept per user; there is no profile beyond the email.
type UserCredential struct {
	// Email is the normalized (lower-cased) address identifying the user.
	Email string `json:"email"`

	// Salt is the per-user random salt, hex encoded. It is generated once
	// at registration and never rotated.
	Salt string `json:"-"`

	// PasswordHash is the hex PBKDF2 digest of the password and salt.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-"`
}
