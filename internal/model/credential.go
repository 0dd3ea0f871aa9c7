package model

// PasswordHasher turns raw passwords into one-way credentials.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Compare(hash, raw string) error
	// Unusable returns a credential that never matches any password.
	Unusable() (string, error)
	IsUsable(hash string) bool
}
