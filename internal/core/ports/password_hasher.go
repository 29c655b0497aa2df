package ports

// PasswordHasher is the one-way credential transform. Implementations
// must salt per call (two hashes of the same plaintext differ) and
// compare in constant time.
type PasswordHasher interface {
	// Hash produces a salted, non-reversible hash of the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext produced hash. Malformed hashes
	// verify as false, never as an error or a panic.
	Verify(plaintext, hash string) bool
}
