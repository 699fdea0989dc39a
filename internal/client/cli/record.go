package cli

import (
	"context"
	"strconv"
)

// HighScore shows the tennis record, or submits a new score:
// "record" shows, "record 42" submits.
func (a *App) HighScore(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Tennis high score: %d\n", a.svc.State().HighScore().Record)
		return nil
	}

	score, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	if a.svc.SubmitHighScore(ctx, score) {
		a.printf("New record: %d!\n", score)
	} else {
		a.printf("Not a record. Still %d.\n", a.svc.State().HighScore().Record)
	}
	return nil
}
