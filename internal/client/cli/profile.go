package cli

import (
	"context"
)

// Profile shows the shared profile and re-prompts the mutable fields.
// The anniversary is fixed at seed time and is display-only here.
func (a *App) Profile(ctx context.Context) error {
	cfg := a.svc.State().Config()

	a.printf("Name: %s\n", cfg.Name)
	if !cfg.Anniversary.IsZero() {
		a.printf("Together since: %s\n", cfg.Anniversary)
	}

	name, err := GetTextWithDefault(a.reader, "Display name", cfg.Name, a.out)
	if err != nil {
		return err
	}
	avatar, err := GetTextWithDefault(a.reader, "Avatar", cfg.Avatar, a.out)
	if err != nil {
		return err
	}

	if name == cfg.Name && avatar == cfg.Avatar {
		a.println("Nothing changed.")
		return nil
	}

	if err := a.svc.UpdateProfile(ctx, name, avatar); err != nil {
		return err
	}
	a.println("Profile updated.")
	return nil
}
