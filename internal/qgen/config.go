package qgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorPrompts is the maximum number of prior prompts to include
	// in the request for deduplication.
	MaxPriorPrompts int

	// MaxRecentErrors is the maximum number of recent errors to include
	// in the request for context.
	MaxRecentErrors int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ScaffoldingValidator{},
			&MetadataValidator{},
			&ArithmeticValidator{},
		},
		MaxTokens:       1024,
		Temperature:     0.7,
		MaxPriorPrompts: 8,
		MaxRecentErrors: 5,
	}
}
