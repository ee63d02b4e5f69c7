package intervention

// Config tunes every trigger threshold.
type Config struct {
	// Struggle tiers by consecutive wrong answers on one question.
	HintAfterWrong     int
	EscalateAfterWrong int

	// Frustration thresholds. Levels run 0 to 1.
	BreakLevel  float64
	BreakWrong  int
	SwitchLevel float64
	SwitchWrong int

	// Mastery tiers by streak length.
	CelebrateStreak int
	WarmStreak      int

	// Stuck detection on the active question.
	SlowAnswerMs  int64
	StuckAttempts int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		HintAfterWrong:     2,
		EscalateAfterWrong: 3,
		BreakLevel:         0.7,
		BreakWrong:         3,
		SwitchLevel:        0.5,
		SwitchWrong:        2,
		CelebrateStreak:    3,
		WarmStreak:         2,
		SlowAnswerMs:       60_000,
		StuckAttempts:      2,
	}
}
