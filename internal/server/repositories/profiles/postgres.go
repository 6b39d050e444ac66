package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/dbx"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, theme, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &models.Profile{}
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Theme, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, theme, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET theme = EXCLUDED.theme, updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`
	out := &models.Profile{UserID: profile.UserID, Theme: profile.Theme}
	if err := r.db.QueryRowContext(ctx, query, profile.UserID, profile.Theme).Scan(&out.UpdatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
