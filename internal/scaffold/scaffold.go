// Package scaffold decides which piece of support a student sees next:
// a leveled hint, the worked example, or an exhausted marker when the
// question has nothing left to give.
//
// Exhaustion is a result, not an error. Callers decide how to degrade
// when the ladder runs out.
package scaffold

import (
	"fmt"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/question"
)

// Result is one rung of the support ladder. At most one of Hint and
// WorkedExample is set; Exhausted means nothing is left to serve. The
// zero value means no support is due yet.
type Result struct {
	Hint          *question.Hint          `json:"hint,omitempty"`
	WorkedExample *question.WorkedExample `json:"workedExample,omitempty"`
	Exhausted     bool                    `json:"exhausted,omitempty"`
}

// Empty reports whether no support was selected.
func (r Result) Empty() bool {
	return r.Hint == nil && r.WorkedExample == nil && !r.Exhausted
}

// Progress tracks which support a student has already seen on one
// question, so repeated hint requests keep climbing the ladder.
type Progress struct {
	Levels      []int `json:"levels,omitempty"`
	WorkedShown bool  `json:"workedShown,omitempty"`
}

// HintsServed is how many hints have been handed out so far.
func (p Progress) HintsServed() int { return len(p.Levels) }

// ForAttempt picks support for a numbered attempt on a question.
// Attempt 1 gets nothing so the student tries alone. Attempt 2 opens
// the hint ladder, starting at guidance instead of a nudge when the
// student already leans on hints. From attempt 3 on, the worked
// example is served when the question has one, otherwise the ladder
// reports itself exhausted.
func ForAttempt(q *question.Question, attempt int, state performance.State, cfg Config) (Result, error) {
	if attempt < 1 {
		return Result{}, fmt.Errorf("attempt %d out of range", attempt)
	}
	if attempt == 1 {
		return Result{}, nil
	}
	if attempt == 2 {
		level := 1
		if state.HintsUsageRate() > cfg.HighUsageRate {
			level = 2
		}
		if h := hintAtOrAbove(q, level); h != nil {
			return Result{Hint: h}, nil
		}
	}
	if we := q.Scaffolding.WorkedExample; we != nil {
		return Result{WorkedExample: we}, nil
	}
	return Result{Exhausted: true}, nil
}

// Next serves the next rung for an explicit hint request: the lowest
// unserved hint above everything already seen, then the worked
// example, then exhaustion. The returned progress records what was
// served; on exhaustion it is returned unchanged.
func Next(q *question.Question, state performance.State, cfg Config, p Progress) (Result, Progress) {
	floor := 0
	if len(p.Levels) == 0 {
		if state.HintsUsageRate() > cfg.HighUsageRate {
			floor = 1
		}
	} else {
		floor = maxLevel(p.Levels)
	}

	if h := hintAbove(q, floor); h != nil {
		np := p
		np.Levels = append(append([]int(nil), p.Levels...), h.Level)
		return Result{Hint: h}, np
	}
	if we := q.Scaffolding.WorkedExample; we != nil && !p.WorkedShown {
		np := p
		np.WorkedShown = true
		return Result{WorkedExample: we}, np
	}
	return Result{Exhausted: true}, p
}

func hintAbove(q *question.Question, level int) *question.Hint {
	for i := range q.Scaffolding.Hints {
		if q.Scaffolding.Hints[i].Level > level {
			return &q.Scaffolding.Hints[i]
		}
	}
	return nil
}

func hintAtOrAbove(q *question.Question, level int) *question.Hint {
	for i := range q.Scaffolding.Hints {
		if q.Scaffolding.Hints[i].Level >= level {
			return &q.Scaffolding.Hints[i]
		}
	}
	return nil
}

func maxLevel(levels []int) int {
	m := 0
	for _, l := range levels {
		if l > m {
			m = l
		}
	}
	return m
}
