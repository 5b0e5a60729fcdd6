package ports

// CredentialHasher produces and verifies stored password credentials. The
// credential embeds its own salt and cost, so Verify needs no side channel.
type CredentialHasher interface {
	// Hash derives a fresh salted credential from the plaintext password.
	Hash(password string) (string, error)
	// Verify recomputes the hash with the parameters embedded in credential
	// and compares in constant time. A malformed or corrupt credential is a
	// verification failure, never a panic or error.
	Verify(password, credential string) bool
}
