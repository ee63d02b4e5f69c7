package qgen

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/sproutedu/sprout/internal/question"
)

// StaticGenerator serves questions from an authored catalog. It backs
// demo sessions and keeps the engine serving when no model provider is
// configured or generation is failing.
type StaticGenerator struct {
	catalog map[string][]question.Question
}

// NewStatic creates a StaticGenerator over the given catalog.
// A nil catalog uses DefaultCatalog.
func NewStatic(catalog map[string][]question.Question) *StaticGenerator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &StaticGenerator{catalog: catalog}
}

// Topics lists the catalog topics in sorted order.
func (s *StaticGenerator) Topics() []string {
	topics := make([]string, 0, len(s.catalog))
	for t := range s.catalog {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Generate picks the catalog question closest to the requested
// difficulty that has not been asked yet. Prompts already in
// input.PriorPrompts and types outside input.Types are avoided, but a
// repeat beats an empty hand when the catalog is exhausted. The served
// question gets a fresh ID.
func (s *StaticGenerator) Generate(_ context.Context, input GenerateInput) (*question.Question, error) {
	pool := s.catalog[input.Topic]
	if len(pool) == 0 {
		return nil, fmt.Errorf("no catalog questions for topic %q", input.Topic)
	}

	asked := make(map[string]bool, len(input.PriorPrompts))
	for _, p := range input.PriorPrompts {
		asked[p] = true
	}
	wantType := make(map[question.Type]bool, len(input.Types))
	for _, t := range input.Types {
		wantType[t] = true
	}

	want := input.Difficulty.Rank()
	best := -1
	bestScore := int(^uint(0) >> 1)
	for i, q := range pool {
		score := q.Difficulty.Rank() - want
		if score < 0 {
			score = -score
		}
		if len(wantType) > 0 && !wantType[q.Type] {
			score += 50
		}
		if asked[q.Prompt] {
			score += 100
		}
		if score < bestScore {
			best, bestScore = i, score
		}
	}

	q := pool[best]
	q.ID = uuid.NewString()
	return &q, nil
}
