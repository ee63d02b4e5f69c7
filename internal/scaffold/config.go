package scaffold

// Config tunes hint selection.
type Config struct {
	// HighUsageRate is the hint reliance above which the ladder skips
	// the level-1 nudge and opens with guidance.
	HighUsageRate float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{HighUsageRate: 0.5}
}
