package session

import (
	"github.com/sproutedu/sprout/internal/intervention"
	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/scaffold"
	"github.com/sproutedu/sprout/internal/zpd"
)

// Config tunes the session service and every engine stage under it.
type Config struct {
	// MaxAttempts is how many submissions a question allows before a
	// wrong answer resolves it as incorrect.
	MaxAttempts int

	// FrustratedAbove is the reported frustration level beyond which
	// the session's emotional state flips to frustrated.
	FrustratedAbove float64

	Performance  performance.Config
	Scaffold     scaffold.Config
	ZPD          zpd.Config
	Intervention intervention.Config
	Rewards      rewards.Config

	// Badges and Worlds override the built-in catalogs. Nil keeps the
	// defaults; an explicit empty slice disables the catalog.
	Badges []rewards.Badge
	Worlds []rewards.World
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     3,
		FrustratedAbove: 0.5,
		Performance:     performance.DefaultConfig(),
		Scaffold:        scaffold.DefaultConfig(),
		ZPD:             zpd.DefaultConfig(),
		Intervention:    intervention.DefaultConfig(),
		Rewards:         rewards.DefaultConfig(),
	}
}
