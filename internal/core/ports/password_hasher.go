package ports

// PasswordHasher hashes plaintext passwords for storage and checks login
// attempts against stored hashes. Hashes are opaque to the core.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash. A mismatch
	// fails with a CredentialIsInvalidError.
	Compare(hash, password string) error
}
