package client

import (
	"context"
)

// Client is the CLI's view of the LearnHub server.
type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) (string, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	// Login authenticates and keeps the issued tokens for later calls. It
	// returns the user ID the tokens belong to.
	Login(ctx context.Context, username string, verifier []byte) (string, error)
	// Logout forgets the tokens and the user ID held by the client.
	Logout()
	// UserID is the user the held tokens belong to, "" when logged out.
	UserID() string
	Ping(ctx context.Context) error
	// GetPreference returns the stored theme of the logged-in user; found is
	// false when none was ever saved.
	GetPreference(ctx context.Context) (theme string, found bool, err error)
	UpsertPreference(ctx context.Context, theme string) error
}
