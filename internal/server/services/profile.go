package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/preference"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
	"github.com/dmitrijs2005/learnhub/internal/server/repositories/profiles"
)

// ProfileService reads and replaces the single theme record of a user.
type ProfileService struct {
	repo profiles.Repository
}

func NewProfileService(repo profiles.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetPreference returns the stored theme of userID. found is false when the
// user never saved one; that is not an error.
func (s *ProfileService) GetPreference(ctx context.Context, userID string) (p preference.Preference, found bool, err error) {
	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading profile: %w", err)
	}

	p, err = preference.Parse(profile.Theme)
	if err != nil {
		// a row the client cannot apply is as good as none
		return "", false, nil
	}
	return p, true, nil
}

// UpsertPreference validates theme and replaces the user's record with it.
func (s *ProfileService) UpsertPreference(ctx context.Context, userID, theme string) (preference.Preference, error) {
	p, err := preference.Parse(theme)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInvalidArgument, err)
	}

	saved, err := s.repo.Upsert(ctx, &models.Profile{UserID: userID, Theme: p.String()})
	if err != nil {
		return "", fmt.Errorf("error saving profile: %w", err)
	}
	return preference.Preference(saved.Theme), nil
}
