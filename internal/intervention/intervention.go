// Package intervention turns performance signals into tutoring moves:
// encouragement, hints, worked examples, topic switches, and breaks.
// Decisions are pure values carrying a message key; rendering the text
// and applying side effects belong to the session layer.
package intervention

import "github.com/sproutedu/sprout/internal/question"

// Kind is the tutoring move being recommended.
type Kind string

const (
	KindEncouragement Kind = "encouragement"
	KindHint          Kind = "hint"
	KindWorkedExample Kind = "worked-example"
	KindTopicSwitch   Kind = "topic-switch"
	KindBreak         Kind = "break-suggestion"
)

// Priority ranks how promptly a move should reach the student.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank orders priorities for comparison, urgent highest.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

// Emotion is the engine's read of the student's state. An empty value
// in a decision means "leave as is".
type Emotion string

const (
	EmotionNeutral    Emotion = "neutral"
	EmotionConfident  Emotion = "confident"
	EmotionExcited    Emotion = "excited"
	EmotionFrustrated Emotion = "frustrated"
)

// Phase tracks where a student sits in the intervention cycle. The
// session returns to PhaseIdle whenever a new question starts.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseStruggling    Phase = "struggling"
	PhaseHinted        Phase = "hinted"
	PhaseWorkedExample Phase = "worked-example"
	PhaseBreak         Phase = "break-suggested"
	PhaseTopicSwitch   Phase = "topic-switch-suggested"
	PhaseMastering     Phase = "mastering"
	PhaseCelebrated    Phase = "celebrated"
)

// Decision is one recommended move. Kind KindHint means the caller
// should pull the next rung from the scaffold ladder; the decision
// itself never carries hint text. MessageKey names a line in a message
// catalog; wording and localization are not the engine's concern.
type Decision struct {
	Kind       Kind     `json:"kind"`
	Priority   Priority `json:"priority"`
	MessageKey string   `json:"messageKey"`
	Emotion    Emotion  `json:"emotion,omitempty"`
	Phase      Phase    `json:"phase"`
}

// OnStruggle reacts to wrong attempts on the active question: first a
// nudge of encouragement, then a hint, and from the third miss the
// worked example, or a break when the question has none. A nil
// question means no worked example is available. From the third miss
// the student is read as frustrated.
func OnStruggle(attempts int, q *question.Question, cfg Config) Decision {
	switch {
	case attempts >= cfg.EscalateAfterWrong:
		if q != nil && q.Scaffolding.WorkedExample != nil {
			return Decision{
				Kind:       KindWorkedExample,
				Priority:   PriorityHigh,
				MessageKey: "worked-example.walkthrough",
				Emotion:    EmotionFrustrated,
				Phase:      PhaseWorkedExample,
			}
		}
		return Decision{
			Kind:       KindBreak,
			Priority:   PriorityHigh,
			MessageKey: "break.recharge",
			Emotion:    EmotionFrustrated,
			Phase:      PhaseBreak,
		}
	case attempts >= cfg.HintAfterWrong:
		return Decision{
			Kind:       KindHint,
			Priority:   PriorityMedium,
			MessageKey: "hint.next",
			Phase:      PhaseHinted,
		}
	default:
		return Decision{
			Kind:       KindEncouragement,
			Priority:   PriorityLow,
			MessageKey: "encouragement.keep-trying",
			Phase:      PhaseStruggling,
		}
	}
}

// OnMastery reacts to a growing streak of correct answers with
// celebratory encouragement.
func OnMastery(streak int, cfg Config) Decision {
	switch {
	case streak >= cfg.CelebrateStreak:
		return Decision{
			Kind:       KindEncouragement,
			Priority:   PriorityHigh,
			MessageKey: "celebration.hot-streak",
			Emotion:    EmotionExcited,
			Phase:      PhaseCelebrated,
		}
	case streak == cfg.WarmStreak:
		return Decision{
			Kind:       KindEncouragement,
			Priority:   PriorityMedium,
			MessageKey: "celebration.warming-up",
			Emotion:    EmotionConfident,
			Phase:      PhaseMastering,
		}
	default:
		return Decision{
			Kind:       KindEncouragement,
			Priority:   PriorityLow,
			MessageKey: "celebration.nice-work",
			Phase:      PhaseIdle,
		}
	}
}

// OnFrustration reacts to a frustration reading between 0 and 1,
// together with how many answers in a row have gone wrong. Values
// outside the range are clamped.
func OnFrustration(level float64, consecutiveWrong int, cfg Config) Decision {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	switch {
	case level > cfg.BreakLevel || consecutiveWrong >= cfg.BreakWrong:
		return Decision{
			Kind:       KindBreak,
			Priority:   PriorityUrgent,
			MessageKey: "break.cool-down",
			Phase:      PhaseBreak,
		}
	case level > cfg.SwitchLevel || consecutiveWrong >= cfg.SwitchWrong:
		return Decision{
			Kind:       KindTopicSwitch,
			Priority:   PriorityHigh,
			MessageKey: "topic-switch.fresh-start",
			Phase:      PhaseTopicSwitch,
		}
	default:
		return Decision{
			Kind:       KindEncouragement,
			Priority:   PriorityMedium,
			MessageKey: "encouragement.brave-try",
			Phase:      PhaseStruggling,
		}
	}
}

// NeedsIntervention reports whether the student is stuck on the active
// question: taking too long, repeatedly wrong, or out of hints. A
// question with no hints at all never trips the hint clause.
func NeedsIntervention(q *question.Question, timeSpentMs int64, attempts, hintsUsed int, cfg Config) bool {
	if timeSpentMs > cfg.SlowAnswerMs {
		return true
	}
	if attempts >= cfg.StuckAttempts {
		return true
	}
	if q != nil && q.Scaffolding.TotalHints() > 0 && hintsUsed >= q.Scaffolding.TotalHints() {
		return true
	}
	return false
}

// Strongest picks the decision that wins when several fire on the same
// answer: higher priority first, more disruptive kind on ties.
func Strongest(ds ...Decision) Decision {
	var best Decision
	for i, d := range ds {
		if i == 0 {
			best = d
			continue
		}
		if d.Priority.Rank() > best.Priority.Rank() {
			best = d
			continue
		}
		if d.Priority.Rank() == best.Priority.Rank() && d.Kind.disruption() > best.Kind.disruption() {
			best = d
		}
	}
	return best
}

func (k Kind) disruption() int {
	switch k {
	case KindBreak:
		return 5
	case KindTopicSwitch:
		return 4
	case KindWorkedExample:
		return 3
	case KindHint:
		return 2
	case KindEncouragement:
		return 1
	}
	return 0
}
