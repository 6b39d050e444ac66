// Package refreshtokens stores the single-use refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/server/models"
)

type Repository interface {
	// Create stores t. Only UserID, Token and Expires are read.
	Create(ctx context.Context, t *models.RefreshToken) error

	// Find returns common.ErrorNotFound when token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for a missing token.
	Delete(ctx context.Context, token string) error

	// DeleteExpired drops tokens that expired before t and reports how many.
	DeleteExpired(ctx context.Context, t time.Time) (int64, error)
}
