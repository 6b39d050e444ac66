package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/learnhub/internal/client/prefsync"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// Theme prints the current draft and, when it differs, the saved value.
func (a *App) Theme(_ context.Context) error {
	s := a.controller.State()
	if !s.IsDirty {
		a.printText(fmt.Sprintf("Theme: %s", s.Draft))
		return nil
	}
	a.printText(fmt.Sprintf("Theme: %s (previewing, saved: %s)", s.Draft, s.Committed))
	return nil
}

func (a *App) Set(_ context.Context, value string) error {
	if err := a.prefs.SetDraft(value); err != nil {
		if errors.Is(err, preference.ErrInvalidPreference) {
			a.printError(fmt.Sprintf("unknown theme %q, choose one of %v", value, preference.All()))
		}
		return err
	}
	a.printPreviewHint()
	return nil
}

func (a *App) Toggle(_ context.Context) error {
	a.prefs.Toggle()
	a.printPreviewHint()
	return nil
}

func (a *App) printPreviewHint() {
	if a.prefs.IsDirty() {
		a.printMuted(fmt.Sprintf("Previewing %s. Type 'save' to keep it or 'revert' to discard.", a.prefs.CurrentDraftValue()))
		return
	}
	a.printMuted(fmt.Sprintf("Back to the saved theme %s.", a.prefs.CurrentDraftValue()))
}

// Save commits the draft. It refuses to do anything when there is nothing
// to save.
func (a *App) Save(ctx context.Context) error {
	if !a.prefs.IsDirty() {
		a.printMuted("Nothing to save.")
		return nil
	}

	saved := a.prefs.CurrentDraftValue()
	if err := a.prefs.Save(ctx); err != nil {
		switch {
		case errors.Is(err, prefsync.ErrRemoteUnavailable):
			a.setMode(ModeOffline)
			a.printError("Server unavailable, the theme was not saved. Your preview is kept; try 'save' again later.")
		case errors.Is(err, prefsync.ErrStaleSave):
			a.printError(fmt.Sprintf("The account changed while saving; %s went to the previous account. Type 'save' to keep it here.", saved))
		default:
			a.printError(fmt.Sprintf("save failed: %v", err))
		}
		return err
	}

	if a.controller.Identity().IsNone() {
		a.printSuccess(fmt.Sprintf("Saved %s on this device.", saved))
	} else {
		a.printSuccess(fmt.Sprintf("Saved %s to your account.", saved))
	}
	return nil
}

func (a *App) Revert(_ context.Context) error {
	if !a.prefs.IsDirty() {
		a.printMuted("Nothing to revert.")
		return nil
	}
	a.prefs.Revert()
	a.printSuccess(fmt.Sprintf("Reverted to %s.", a.prefs.CurrentDraftValue()))
	return nil
}

// Status prints identity, connectivity and preference state.
func (a *App) Status(_ context.Context) error {
	s := a.controller.State()
	a.printText(fmt.Sprintf("identity:  %s", a.controller.Identity()))
	a.printText(fmt.Sprintf("mode:      %s", a.Mode()))
	a.printText(fmt.Sprintf("committed: %s", s.Committed))
	a.printText(fmt.Sprintf("draft:     %s", s.Draft))
	a.printText(fmt.Sprintf("dirty:     %t", s.IsDirty))
	return nil
}

func (a *App) printText(msg string) {
	fmt.Fprintln(a.out, a.presenter.Styles().Text.Render(msg))
}

func (a *App) printMuted(msg string) {
	fmt.Fprintln(a.out, a.presenter.Styles().Muted.Render(msg))
}

func (a *App) printSuccess(msg string) {
	fmt.Fprintln(a.out, a.presenter.Styles().Success.Render(msg))
}

func (a *App) printError(msg string) {
	fmt.Fprintln(a.out, a.presenter.Styles().Danger.Render(msg))
}
