// Package question defines the question records the tutoring engine
// consumes: typed content for every supported question kind, the ordered
// difficulty scale, scaffolding metadata, and answer checking.
//
// Questions are authored or generated upstream and are immutable once a
// session starts. Everything in this package is pure data plus total
// functions; nothing here performs I/O.
package question

import (
	"encoding/json"
	"fmt"
)

// Question is a single practice question ready to be served.
type Question struct {
	// ID uniquely identifies the question within a session.
	ID string `json:"id"`

	// Topic is the curriculum topic this question belongs to,
	// e.g. "fractions". Subtopic optionally narrows it,
	// e.g. "equivalent-fractions".
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic,omitempty"`

	// Type discriminates the Content union.
	Type Type `json:"type"`

	// Difficulty places the question on the ordered difficulty scale.
	Difficulty Difficulty `json:"difficulty"`

	// CognitiveLoad estimates how demanding the question format is,
	// independent of difficulty.
	CognitiveLoad CognitiveLoad `json:"cognitiveLoad"`

	// Prompt is the question text shown to the learner. Plain text;
	// rendering is the caller's concern.
	Prompt string `json:"prompt"`

	// Content holds the type-specific payload: choices, accepted
	// answers, pairs, and so on.
	Content Content `json:"content"`

	// Scaffolding carries the progressive help attached to the question.
	Scaffolding Scaffolding `json:"scaffolding"`

	// EstimatedTimeSeconds is the authored estimate of how long the
	// question should take.
	EstimatedTimeSeconds int `json:"estimatedTimeSeconds"`

	// Points is the authored point value, used for display. Reward XP is
	// computed by the rewards calculator, not from this field.
	Points int `json:"points"`
}

// CognitiveLoad estimates the working-memory demand of a question format.
type CognitiveLoad string

const (
	LoadLow    CognitiveLoad = "low"
	LoadMedium CognitiveLoad = "medium"
	LoadHigh   CognitiveLoad = "high"
)

// AllCognitiveLoads returns the loads in increasing order.
func AllCognitiveLoads() []CognitiveLoad {
	return []CognitiveLoad{LoadLow, LoadMedium, LoadHigh}
}

// Valid reports whether the load is one of the known values.
func (l CognitiveLoad) Valid() bool {
	switch l {
	case LoadLow, LoadMedium, LoadHigh:
		return true
	}
	return false
}

// Scaffolding is the ordered help attached to a question: hints by level,
// an optional worked example, and an optional visual aid.
type Scaffolding struct {
	Hints         []Hint         `json:"hints,omitempty"`
	WorkedExample *WorkedExample `json:"workedExample,omitempty"`
	VisualAid     *VisualAid     `json:"visualAid,omitempty"`
}

// TotalHints returns the number of hints available for the question.
func (s Scaffolding) TotalHints() int { return len(s.Hints) }

// Hint is a single scaffolding step.
type Hint struct {
	// Level orders hints from gentlest (1) to most direct (3).
	Level int `json:"level"`

	// Kind describes how much the hint gives away.
	Kind HintKind `json:"kind"`

	Text string `json:"text"`
}

// HintKind describes the directness of a hint.
type HintKind string

const (
	HintNudge    HintKind = "nudge"
	HintGuidance HintKind = "guidance"
	HintReveal   HintKind = "reveal"
)

// Valid reports whether the kind is one of the known values.
func (k HintKind) Valid() bool {
	switch k {
	case HintNudge, HintGuidance, HintReveal:
		return true
	}
	return false
}

// WorkedExample walks through a similar problem step by step.
type WorkedExample struct {
	Intro string   `json:"intro,omitempty"`
	Steps []string `json:"steps"`
}

// VisualAid references an external visual resource for the question.
type VisualAid struct {
	Kind string `json:"kind"`
	Ref  string `json:"ref"`
	Alt  string `json:"alt,omitempty"`
}

// Validate checks that the question is structurally sound: known enum
// values, content matching the declared type, and hints strictly ordered
// by level within 1..3.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question id is empty")
	}
	if q.Topic == "" {
		return fmt.Errorf("question %s: topic is empty", q.ID)
	}
	if !q.Type.Valid() {
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
	}
	if !q.CognitiveLoad.Valid() {
		return fmt.Errorf("question %s: unknown cognitive load %q", q.ID, q.CognitiveLoad)
	}
	if q.Prompt == "" {
		return fmt.Errorf("question %s: prompt is empty", q.ID)
	}
	if q.Content == nil {
		return fmt.Errorf("question %s: content is missing", q.ID)
	}
	if q.Content.Type() != q.Type {
		return fmt.Errorf("question %s: content type %q does not match question type %q",
			q.ID, q.Content.Type(), q.Type)
	}
	if err := q.Content.validate(); err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	if err := validateScaffolding(q.Scaffolding); err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	if q.EstimatedTimeSeconds < 0 {
		return fmt.Errorf("question %s: negative estimated time", q.ID)
	}
	if q.Points < 0 {
		return fmt.Errorf("question %s: negative points", q.ID)
	}
	return nil
}

// validateScaffolding enforces the hint ordering invariant: levels are
// strictly increasing and every level lies in 1..3.
func validateScaffolding(s Scaffolding) error {
	prev := 0
	for i, h := range s.Hints {
		if h.Level < 1 || h.Level > 3 {
			return fmt.Errorf("hint %d: level %d out of range 1..3", i, h.Level)
		}
		if h.Level <= prev {
			return fmt.Errorf("hint %d: level %d not above previous level %d", i, h.Level, prev)
		}
		if !h.Kind.Valid() {
			return fmt.Errorf("hint %d: unknown kind %q", i, h.Kind)
		}
		if h.Text == "" {
			return fmt.Errorf("hint %d: text is empty", i)
		}
		prev = h.Level
	}
	if s.WorkedExample != nil && len(s.WorkedExample.Steps) == 0 {
		return fmt.Errorf("worked example has no steps")
	}
	return nil
}

// questionJSON is the wire form of Question with the content payload held
// raw until the type discriminator is known.
type questionJSON struct {
	ID                   string          `json:"id"`
	Topic                string          `json:"topic"`
	Subtopic             string          `json:"subtopic,omitempty"`
	Type                 Type            `json:"type"`
	Difficulty           Difficulty      `json:"difficulty"`
	CognitiveLoad        CognitiveLoad   `json:"cognitiveLoad"`
	Prompt               string          `json:"prompt"`
	Content              json.RawMessage `json:"content"`
	Scaffolding          Scaffolding     `json:"scaffolding"`
	EstimatedTimeSeconds int             `json:"estimatedTimeSeconds"`
	Points               int             `json:"points"`
}

// MarshalJSON emits the content payload under its type discriminator.
func (q Question) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(q.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(questionJSON{
		ID:                   q.ID,
		Topic:                q.Topic,
		Subtopic:             q.Subtopic,
		Type:                 q.Type,
		Difficulty:           q.Difficulty,
		CognitiveLoad:        q.CognitiveLoad,
		Prompt:               q.Prompt,
		Content:              raw,
		Scaffolding:          q.Scaffolding,
		EstimatedTimeSeconds: q.EstimatedTimeSeconds,
		Points:               q.Points,
	})
}

// UnmarshalJSON decodes the content payload into the concrete type named
// by the type discriminator.
func (q *Question) UnmarshalJSON(data []byte) error {
	var wire questionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	q.ID = wire.ID
	q.Topic = wire.Topic
	q.Subtopic = wire.Subtopic
	q.Type = wire.Type
	q.Difficulty = wire.Difficulty
	q.CognitiveLoad = wire.CognitiveLoad
	q.Prompt = wire.Prompt
	q.Scaffolding = wire.Scaffolding
	q.EstimatedTimeSeconds = wire.EstimatedTimeSeconds
	q.Points = wire.Points

	if len(wire.Content) == 0 {
		q.Content = nil
		return nil
	}
	content, err := decodeContent(wire.Type, wire.Content)
	if err != nil {
		return err
	}
	q.Content = content
	return nil
}
