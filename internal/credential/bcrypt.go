package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/accounts/internal/model"
)

// unusablePrefix marks credentials that can never match a password.
const unusablePrefix = "!"

const unusableSuffixLength = 40

const unusableAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with bcrypt. Passwords are reduced to a base64
// SHA-256 digest first, so bcrypt's 72-byte input limit never applies.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher. Costs outside bcrypt's range fall back
// to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the bcrypt hash of raw.
func (b *Bcrypt) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(raw), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare returns nil when raw matches hash.
func (b *Bcrypt) Compare(hash, raw string) error {
	if !b.IsUsable(hash) {
		return model.ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(raw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return model.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}

func prehash(raw string) []byte {
	sum := sha256.Sum256([]byte(raw))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// Unusable returns a random credential that no password hashes to.
func (b *Bcrypt) Unusable() (string, error) {
	buf := make([]byte, unusableSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate unusable password: %w", err)
	}
	for i, c := range buf {
		buf[i] = unusableAlphabet[int(c)%len(unusableAlphabet)]
	}
	return unusablePrefix + string(buf), nil
}

// IsUsable reports whether hash can ever match a password.
func (b *Bcrypt) IsUsable(hash string) bool {
	return hash != "" && !strings.HasPrefix(hash, unusablePrefix)
}
