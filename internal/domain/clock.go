package domain

import "github.com/jonboulle/clockwork"

// clock supplies the GeneratedAt timestamp on derived ringdown reports.
var clock = clockwork.NewRealClock()

// SetClock replaces the timestamp source for report generation, typically
// with a frozen fake so tests get stable GeneratedAt values. A nil argument
// restores the wall clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
