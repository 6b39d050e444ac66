// Package services contains the application services of the LearnHub CLI.
// AuthService signs the user in and out and publishes the resulting identity.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/client/identity"
	"github.com/dmitrijs2005/learnhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/cryptox"
	"github.com/dmitrijs2005/learnhub/internal/dbx"
)

const (
	metaUsername = "username"
	metaUserID   = "user_id"
)

var ErrEmptyCredentials = errors.New("username and password are required")

// AuthService defines authentication operations for the CLI.
//
// Login and Logout change the identity published by the provider the
// service was built with; everything following that provider (the
// preference controller) reacts to it.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) (string, error)
	Login(ctx context.Context, username string, password []byte) (identity.Identity, error)
	Logout(ctx context.Context) error
	// LastUsername is the username of the last successful login, "" if none.
	LastUsername(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	ids    *identity.Provider
}

func NewAuthService(c client.Client, db *sql.DB, ids *identity.Provider) AuthService {
	return &authService{client: c, db: db, ids: ids}
}

// Register creates a new account. A random salt is generated and only the
// verifier derived from (password, salt) leaves the machine.
func (a *authService) Register(ctx context.Context, username string, password []byte) (string, error) {
	if username == "" || len(password) == 0 {
		return "", ErrEmptyCredentials
	}

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	userID, err := a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key))
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return userID, nil
}

// Login authenticates against the server, remembers who logged in and
// publishes the new identity.
func (a *authService) Login(ctx context.Context, username string, password []byte) (identity.Identity, error) {
	if username == "" || len(password) == 0 {
		return identity.None(), ErrEmptyCredentials
	}

	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return identity.None(), fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveMasterKey(password, salt)
	verifier := cryptox.MakeVerifier(key)
	common.WipeByteArray(key)

	userID, err := a.client.Login(ctx, username, verifier)
	if err != nil {
		return identity.None(), fmt.Errorf("login error: %w", err)
	}

	if err := a.saveLogin(ctx, username, userID); err != nil {
		a.client.Logout()
		return identity.None(), fmt.Errorf("saving login data: %w", err)
	}

	id := identity.User(userID)
	a.ids.Set(id)
	return id, nil
}

func (a *authService) saveLogin(ctx context.Context, username, userID string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metaUsername, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, metaUserID, []byte(userID))
	})
}

// Logout drops the server session and clears the identity. The locally
// cached preference is left as it is.
func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()
	a.ids.Set(identity.None())

	if err := metadata.NewSQLiteRepository(a.db).Delete(ctx, metaUserID); err != nil {
		return fmt.Errorf("clearing login data: %w", err)
	}
	return nil
}

func (a *authService) LastUsername(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(a.db).Get(ctx, metaUsername)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
