package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates an account. The
// password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Register(ctx, userName, password); err != nil {
		a.printError(describeAuthError("registration failed", err))
		return err
	}

	a.printSuccess("Registered. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials, offering the last username as default, and
// signs in. The controller picks up the new identity and pulls the theme
// saved for the account.
func (a *App) Login(ctx context.Context) error {
	last, err := a.authService.LastUsername(ctx)
	if err != nil {
		a.logger.Warn(ctx, "reading last username", "error", err)
	}

	prompt := "Enter username"
	if last != "" {
		prompt = fmt.Sprintf("Enter username [%s]", last)
	}

	userName, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		userName = last
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, userName, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		a.printError(describeAuthError("login failed", err))
		return err
	}

	a.mu.Lock()
	a.userName = userName
	a.mu.Unlock()
	a.setMode(ModeOnline)

	a.printSuccess(fmt.Sprintf("Logged in as %s", userName))
	return nil
}

// Logout clears the identity. The theme on this device stays as it is.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printMuted("Not logged in.")
		return nil
	}

	err := a.authService.Logout(ctx)

	a.mu.Lock()
	a.userName = ""
	a.mu.Unlock()

	if err != nil {
		a.printError(fmt.Sprintf("logout: %v", err))
		return err
	}

	a.printSuccess("Logged out. Theme changes are now kept on this device only.")
	return nil
}

func describeAuthError(prefix string, err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return prefix + ": server unavailable"
	case errors.Is(err, client.ErrUnauthorized):
		return prefix + ": wrong username or password"
	case errors.Is(err, client.ErrAlreadyExists):
		return prefix + ": username already taken"
	default:
		return fmt.Sprintf("%s: %v", prefix, err)
	}
}
