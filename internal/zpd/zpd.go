// Package zpd keeps a student inside their zone of proximal
// development: hard enough to stretch, easy enough to stay in reach.
// It reads the performance picture and recommends at most a one-step
// difficulty move, never a jump.
package zpd

import (
	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/question"
)

// Reasons attached to every decision. Downstream surfaces show these
// to parents and dashboards verbatim.
const (
	ReasonMasteryStreak    = "mastery streak"
	ReasonStruggleDetected = "struggle detected"
	ReasonSteadyState      = "steady state"
)

// Decision is the outcome of one evaluation. From and To are equal
// when no move is warranted, or when a warranted move is already
// clamped at the scale's edge.
type Decision struct {
	From   question.Difficulty `json:"from"`
	To     question.Difficulty `json:"to"`
	Reason string              `json:"reason"`
}

// Moved reports whether the difficulty actually changed.
func (d Decision) Moved() bool { return d.From != d.To }

// Evaluate recommends the next difficulty for a student. It is a pure
// read: evaluating twice against the same state yields the same
// decision, and the state is never touched.
func Evaluate(current question.Difficulty, state performance.State, cfg Config) Decision {
	acc := state.AccuracyRate()

	if state.Streak >= cfg.StreakToAdvance && acc >= cfg.AdvanceAccuracy {
		return Decision{From: current, To: current.Up(), Reason: ReasonMasteryStreak}
	}
	if state.LastNWrong(cfg.RecentWrong) || (acc < cfg.StruggleAccuracy && len(state.Recent) >= cfg.MinWindow) {
		return Decision{From: current, To: current.Down(), Reason: ReasonStruggleDetected}
	}
	return Decision{From: current, To: current, Reason: ReasonSteadyState}
}
