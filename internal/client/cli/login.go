package cli

import (
	"context"
)

// Login prompts for the shared passcode and opens a session. On success
// the session flag is set so the next start skips straight to the journal.
func (a *App) Login(ctx context.Context) error {
	passcode, err := GetPasscode(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, string(passcode)); err != nil {
		return err
	}

	if err := a.snap.MarkSessionOpen(ctx); err != nil {
		a.logger.Warn(ctx, "session flag write failed", "error", err)
	}

	a.println("Welcome!")
	return nil
}

// Logout drops the session flag; the in-memory token dies with the
// process.
func (a *App) Logout(ctx context.Context) error {
	if err := a.snap.ClearSession(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}
