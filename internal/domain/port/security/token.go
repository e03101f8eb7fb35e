package security

// TokenService issues and verifies signed tokens binding a user identity.
// The domain never inspects the token format
type TokenService interface {
	// Generate issues a signed token for the given user
	Generate(userID uint64) (string, error)
	// Verify checks a token and returns the user it was issued for
	Verify(token string) (uint64, error)
}

// PasswordHasher hashes and compares user passwords
type PasswordHasher interface {
	// Hash derives a storage-safe hash from a plaintext password
	Hash(password string) (string, error)
	// Compare checks a plaintext password against a stored hash
	Compare(hash, password string) error
}
