package zpd

// Config tunes when difficulty moves.
type Config struct {
	// StreakToAdvance and AdvanceAccuracy must both hold to step up.
	StreakToAdvance int
	AdvanceAccuracy float64

	// A step down fires when the last RecentWrong answers were all
	// incorrect, or when window accuracy falls below StruggleAccuracy
	// with at least MinWindow answers to judge by.
	RecentWrong      int
	StruggleAccuracy float64
	MinWindow        int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		StreakToAdvance:  3,
		AdvanceAccuracy:  0.80,
		RecentWrong:      2,
		StruggleAccuracy: 0.40,
		MinWindow:        3,
	}
}
