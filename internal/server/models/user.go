package models

import (
	"time"

	"github.com/dmitrijs2005/learnhub/internal/cryptox"
)

// User is a LearnHub account. The server never sees the password, only the
// salt and verifier the client derived from it.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}

// Accepts reports whether candidate matches the stored verifier.
func (u *User) Accepts(candidate []byte) bool {
	return cryptox.VerifierMatches(u.Verifier, candidate)
}
