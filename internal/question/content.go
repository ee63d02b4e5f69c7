package question

import (
	"encoding/json"
	"fmt"
	"math"
)

// Type discriminates the Content union.
type Type string

const (
	TypeMultipleChoice Type = "multiple-choice"
	TypeMultipleSelect Type = "multiple-select"
	TypeFillBlank      Type = "fill-blank"
	TypeTrueFalse      Type = "true-false"
	TypeNumeric        Type = "numeric"
	TypeShortAnswer    Type = "short-answer"
	TypeOpenResponse   Type = "open-response"
	TypeMatching       Type = "matching"
	TypeOrdering       Type = "ordering"
)

// AllTypes returns every supported question type.
func AllTypes() []Type {
	return []Type{
		TypeMultipleChoice,
		TypeMultipleSelect,
		TypeFillBlank,
		TypeTrueFalse,
		TypeNumeric,
		TypeShortAnswer,
		TypeOpenResponse,
		TypeMatching,
		TypeOrdering,
	}
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Content is the tagged union of type-specific question payloads. Exactly
// one concrete type exists per question Type; checking and validation
// dispatch exhaustively on the concrete type.
type Content interface {
	// Type returns the discriminator for this payload.
	Type() Type

	validate() error
}

// MultipleChoice offers a fixed set of choices with one correct option.
type MultipleChoice struct {
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
}

func (MultipleChoice) Type() Type { return TypeMultipleChoice }

func (c MultipleChoice) validate() error {
	if len(c.Choices) < 2 {
		return fmt.Errorf("multiple-choice needs at least 2 choices, got %d", len(c.Choices))
	}
	if c.CorrectIndex < 0 || c.CorrectIndex >= len(c.Choices) {
		return fmt.Errorf("correct index %d out of range for %d choices", c.CorrectIndex, len(c.Choices))
	}
	return nil
}

// MultipleSelect offers a fixed set of choices with one or more correct
// options; all of them must be selected.
type MultipleSelect struct {
	Choices        []string `json:"choices"`
	CorrectIndices []int    `json:"correctIndices"`
}

func (MultipleSelect) Type() Type { return TypeMultipleSelect }

func (c MultipleSelect) validate() error {
	if len(c.Choices) < 2 {
		return fmt.Errorf("multiple-select needs at least 2 choices, got %d", len(c.Choices))
	}
	if len(c.CorrectIndices) == 0 {
		return fmt.Errorf("multiple-select has no correct indices")
	}
	seen := make(map[int]bool, len(c.CorrectIndices))
	for _, idx := range c.CorrectIndices {
		if idx < 0 || idx >= len(c.Choices) {
			return fmt.Errorf("correct index %d out of range for %d choices", idx, len(c.Choices))
		}
		if seen[idx] {
			return fmt.Errorf("correct index %d listed twice", idx)
		}
		seen[idx] = true
	}
	return nil
}

// FillBlank asks the learner to type the missing word or value. Any of
// the accepted answers counts.
type FillBlank struct {
	Accepted []string `json:"accepted"`
}

func (FillBlank) Type() Type { return TypeFillBlank }

func (c FillBlank) validate() error {
	if len(c.Accepted) == 0 {
		return fmt.Errorf("fill-blank has no accepted answers")
	}
	for i, a := range c.Accepted {
		if a == "" {
			return fmt.Errorf("fill-blank accepted answer %d is empty", i)
		}
	}
	return nil
}

// TrueFalse is a boolean judgment, optionally requiring the learner to
// justify the choice.
type TrueFalse struct {
	Answer             bool `json:"answer"`
	RequireExplanation bool `json:"requireExplanation,omitempty"`
}

func (TrueFalse) Type() Type { return TypeTrueFalse }

func (TrueFalse) validate() error { return nil }

// Numeric expects a number, compared within an absolute tolerance.
// Fractions like "3/4" are accepted and reduced before comparison.
type Numeric struct {
	Answer    float64 `json:"answer"`
	Tolerance float64 `json:"tolerance,omitempty"`
	Unit      string  `json:"unit,omitempty"`
}

func (Numeric) Type() Type { return TypeNumeric }

func (c Numeric) validate() error {
	if math.IsNaN(c.Answer) || math.IsInf(c.Answer, 0) {
		return fmt.Errorf("numeric answer is not a finite number")
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("numeric tolerance is negative")
	}
	return nil
}

// ShortAnswer expects a short free-text response matched against the
// accepted list after normalization.
type ShortAnswer struct {
	Accepted []string `json:"accepted"`
}

func (ShortAnswer) Type() Type { return TypeShortAnswer }

func (c ShortAnswer) validate() error {
	if len(c.Accepted) == 0 {
		return fmt.Errorf("short-answer has no accepted answers")
	}
	return nil
}

// OpenResponse is a free-form response graded outside the engine. The
// engine only checks that something substantive was submitted.
type OpenResponse struct {
	MinWords int    `json:"minWords,omitempty"`
	Rubric   string `json:"rubric,omitempty"`
}

func (OpenResponse) Type() Type { return TypeOpenResponse }

func (c OpenResponse) validate() error {
	if c.MinWords < 0 {
		return fmt.Errorf("open-response min words is negative")
	}
	return nil
}

// Matching pairs each left item with exactly one right item.
// Pairs[i] is the index into Right for Left[i].
type Matching struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
	Pairs []int    `json:"pairs"`
}

func (Matching) Type() Type { return TypeMatching }

func (c Matching) validate() error {
	if len(c.Left) < 2 {
		return fmt.Errorf("matching needs at least 2 left items, got %d", len(c.Left))
	}
	if len(c.Right) < len(c.Left) {
		return fmt.Errorf("matching has %d right items for %d left items", len(c.Right), len(c.Left))
	}
	if len(c.Pairs) != len(c.Left) {
		return fmt.Errorf("matching has %d pairs for %d left items", len(c.Pairs), len(c.Left))
	}
	used := make(map[int]bool, len(c.Pairs))
	for i, r := range c.Pairs {
		if r < 0 || r >= len(c.Right) {
			return fmt.Errorf("pair %d: right index %d out of range", i, r)
		}
		if used[r] {
			return fmt.Errorf("pair %d: right index %d used twice", i, r)
		}
		used[r] = true
	}
	return nil
}

// Ordering asks the learner to arrange items into the correct sequence.
// Correct[k] is the index into Items that belongs at position k.
type Ordering struct {
	Items   []string `json:"items"`
	Correct []int    `json:"correct"`
}

func (Ordering) Type() Type { return TypeOrdering }

func (c Ordering) validate() error {
	if len(c.Items) < 2 {
		return fmt.Errorf("ordering needs at least 2 items, got %d", len(c.Items))
	}
	if len(c.Correct) != len(c.Items) {
		return fmt.Errorf("ordering has %d positions for %d items", len(c.Correct), len(c.Items))
	}
	seen := make(map[int]bool, len(c.Correct))
	for k, idx := range c.Correct {
		if idx < 0 || idx >= len(c.Items) {
			return fmt.Errorf("position %d: item index %d out of range", k, idx)
		}
		if seen[idx] {
			return fmt.Errorf("position %d: item index %d used twice", k, idx)
		}
		seen[idx] = true
	}
	return nil
}

// decodeContent unmarshals a raw content payload into the concrete type
// for t.
func decodeContent(t Type, raw json.RawMessage) (Content, error) {
	switch t {
	case TypeMultipleChoice:
		return decodeInto[MultipleChoice](raw)
	case TypeMultipleSelect:
		return decodeInto[MultipleSelect](raw)
	case TypeFillBlank:
		return decodeInto[FillBlank](raw)
	case TypeTrueFalse:
		return decodeInto[TrueFalse](raw)
	case TypeNumeric:
		return decodeInto[Numeric](raw)
	case TypeShortAnswer:
		return decodeInto[ShortAnswer](raw)
	case TypeOpenResponse:
		return decodeInto[OpenResponse](raw)
	case TypeMatching:
		return decodeInto[Matching](raw)
	case TypeOrdering:
		return decodeInto[Ordering](raw)
	default:
		return nil, fmt.Errorf("unknown question type %q", t)
	}
}

func decodeInto[C Content](raw json.RawMessage) (Content, error) {
	var c C
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode %s content: %w", c.Type(), err)
	}
	return c, nil
}
