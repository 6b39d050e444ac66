package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/dbx"
	"github.com/dmitrijs2005/learnhub/internal/server/models"
)

const (
	insertToken = `INSERT INTO refresh_tokens (user_id, token, expires_at) VALUES ($1, $2, $3)`
	selectToken = `SELECT user_id, expires_at FROM refresh_tokens WHERE token = $1`
	deleteToken = `DELETE FROM refresh_tokens WHERE token = $1`
	purgeTokens = `DELETE FROM refresh_tokens WHERE expires_at < $1`
)

// PostgresRepository works on the pool as well as inside the rotation
// transaction.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	if _, err := r.db.ExecContext(ctx, insertToken, t.UserID, t.Token, t.Expires); err != nil {
		return fmt.Errorf("refresh token insert: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	t := &models.RefreshToken{Token: token}
	err := r.db.QueryRowContext(ctx, selectToken, token).Scan(&t.UserID, &t.Expires)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, common.ErrorNotFound
	case err != nil:
		return nil, fmt.Errorf("refresh token lookup: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, deleteToken, token); err != nil {
		return fmt.Errorf("refresh token delete: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeTokens, before)
	if err != nil {
		return 0, fmt.Errorf("refresh token purge: %w", err)
	}
	return res.RowsAffected()
}
