package room

import "time"

// Options configures per-room game play.
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
	MaxSeats      int
	BotDelayMin   time.Duration
	BotDelayMax   time.Duration
	StreetDelay   time.Duration
	NextHandDelay time.Duration
	EmoteCooldown time.Duration
}

// DefaultOptions returns the standard table configuration.
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    10,
		BigBlind:      20,
		MaxSeats:      5,
		BotDelayMin:   800 * time.Millisecond,
		BotDelayMax:   2400 * time.Millisecond,
		StreetDelay:   time.Second,
		NextHandDelay: 3 * time.Second,
		EmoteCooldown: 20 * time.Second,
	}
}
