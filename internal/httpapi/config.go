package httpapi

// Config holds HTTP-layer behavior knobs.
type Config struct {
	// AllowedOrigins is the CORS origin whitelist. "*" allows any.
	AllowedOrigins []string

	// QuestionCount is how many questions a session gets when the start
	// request does not say. MaxQuestions caps what a request may ask for.
	QuestionCount int
	MaxQuestions  int

	// HistoryLimit caps history query sizes.
	HistoryLimit int
}

// DefaultConfig returns the standard HTTP configuration.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
		QuestionCount:  5,
		MaxQuestions:   20,
		HistoryLimit:   50,
	}
}
