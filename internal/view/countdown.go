package view

import "time"

// Remaining is the time left before the celebration, split the way the
// countdown strip displays it.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Until computes the countdown at a given instant, clamped to zero once
// the target has passed.
func Until(target, now time.Time) Remaining {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{}
	}
	return Remaining{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}
}

func (r Remaining) Zero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}
