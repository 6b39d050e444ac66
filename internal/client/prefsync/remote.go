package prefsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/client/identity"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// PreferenceClient is the part of client.Client the remote store needs.
type PreferenceClient interface {
	UserID() string
	GetPreference(ctx context.Context) (string, bool, error)
	UpsertPreference(ctx context.Context, theme string) error
}

// ClientStore is a RemoteStore backed by the gRPC client. The client only
// ever acts for the user it is logged in as, so requests for any other
// identity are rejected without a round trip.
type ClientStore struct {
	client PreferenceClient
}

func NewClientStore(c PreferenceClient) *ClientStore {
	return &ClientStore{client: c}
}

func (s *ClientStore) Upsert(ctx context.Context, id identity.Identity, p preference.Preference) error {
	if err := s.checkIdentity(id); err != nil {
		return err
	}
	if err := s.client.UpsertPreference(ctx, p.String()); err != nil {
		return mapClientError(err)
	}
	return nil
}

func (s *ClientStore) Get(ctx context.Context, id identity.Identity) (preference.Preference, bool, error) {
	if err := s.checkIdentity(id); err != nil {
		return "", false, err
	}

	theme, found, err := s.client.GetPreference(ctx)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return "", false, nil
		}
		return "", false, mapClientError(err)
	}
	if !found {
		return "", false, nil
	}

	p, err := preference.Parse(theme)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}
	return p, true, nil
}

func (s *ClientStore) checkIdentity(id identity.Identity) error {
	if id.IsNone() {
		return fmt.Errorf("%w: no identity", ErrRemoteRejected)
	}
	if current := s.client.UserID(); current != id.ID {
		return fmt.Errorf("%w: client is signed in as %q, not %q", ErrRemoteRejected, current, id.ID)
	}
	return nil
}

func mapClientError(err error) error {
	if errors.Is(err, client.ErrUnavailable) {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
}
