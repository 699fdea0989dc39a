package views

import (
	"fmt"
	"time"
)

// Countdown is the remaining time until a target instant, broken into whole
// days/hours/minutes/seconds. Once the target is reached it clamps to zero
// and Done reports true.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Done    bool
}

// CountdownTo computes the countdown from now to target.
func CountdownTo(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{Done: true}
	}

	return Countdown{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff % (24 * time.Hour) / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

// String renders the countdown in the dashboard's zero-padded form.
func (c Countdown) String() string {
	return fmt.Sprintf("%02dd %02dh %02dm %02ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}
