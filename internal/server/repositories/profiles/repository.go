// Package profiles persists the per-user theme record behind the remote
// preference store. Writes are create-or-replace; the last writer wins.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/learnhub/internal/server/models"
)

type Repository interface {
	// Get returns the profile of userID or common.ErrorNotFound.
	Get(ctx context.Context, userID string) (*models.Profile, error)

	// Upsert creates or replaces the profile and returns the stored record.
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}
