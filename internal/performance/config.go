package performance

// Config tunes how answers move the tracked state. Start from
// DefaultConfig; a zero WindowSize falls back to it.
type Config struct {
	// WindowSize caps how many recent answers feed the derived metrics.
	WindowSize int

	// Mastery movement per answer, applied before clamping to [0, 100].
	CorrectNoHintsDelta   int
	CorrectWithHintsDelta int
	IncorrectDelta        int

	// Tag thresholds over the window. A tag needs MinSample answers in
	// the window before it is classified either way.
	StruggleBelow     float64
	StrengthAtOrAbove float64
	MinSample         int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		WindowSize:            15,
		CorrectNoHintsDelta:   2,
		CorrectWithHintsDelta: 1,
		IncorrectDelta:        -1,
		StruggleBelow:         0.40,
		StrengthAtOrAbove:     0.85,
		MinSample:             3,
	}
}
