package httpapi

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/session"
)

// produceQuestions fills a question list, preferring the model-backed
// generator and falling back to the catalog. The boolean reports
// whether the fallback produced any of the output.
func (s *Server) produceQuestions(ctx context.Context, input qgen.GenerateInput, count int) ([]question.Question, bool, error) {
	if s.gen != nil {
		questions, err := qgen.Batch(ctx, s.gen, input, count)

		// A retryable validation failure means the model produced a
		// near-miss; one more pass usually lands it.
		var valErr *qgen.ValidationError
		if err != nil && errors.As(err, &valErr) && valErr.Retryable {
			retryInput := input
			for _, q := range questions {
				retryInput.PriorPrompts = append(retryInput.PriorPrompts, q.Prompt)
			}
			var more []question.Question
			more, err = qgen.Batch(ctx, s.gen, retryInput, count-len(questions))
			questions = append(questions, more...)
		}

		if err == nil {
			return questions, false, nil
		}
		s.log.Warn("question generation failed, serving catalog",
			zap.String("topic", input.Topic),
			zap.Int("generated", len(questions)),
			zap.Error(err),
		)
		// Keep what the model produced and fill the rest from the
		// catalog, deduplicating against the partial batch.
		for _, q := range questions {
			input.PriorPrompts = append(input.PriorPrompts, q.Prompt)
		}
		rest, cErr := qgen.Batch(ctx, s.catalog, input, count-len(questions))
		if cErr != nil {
			return nil, false, &session.ConfigurationError{Reason: cErr.Error()}
		}
		return append(questions, rest...), true, nil
	}

	questions, err := qgen.Batch(ctx, s.catalog, input, count)
	if err != nil {
		return nil, false, &session.ConfigurationError{Reason: err.Error()}
	}
	return questions, true, nil
}

type generateRequest struct {
	Topic      string   `json:"topic" binding:"required"`
	Difficulty string   `json:"difficulty"`
	Count      int      `json:"count"`
	Types      []string `json:"types"`
}

func (s *Server) generateQuestions(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, err.Error())
		return
	}

	difficulty := question.DifficultyMedium
	if req.Difficulty != "" {
		d, err := question.ParseDifficulty(req.Difficulty)
		if err != nil {
			fail(c, 400, err.Error())
			return
		}
		difficulty = d
	}
	types, err := parseTypes(req.Types)
	if err != nil {
		fail(c, 400, err.Error())
		return
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > s.cfg.MaxQuestions {
		count = s.cfg.MaxQuestions
	}

	questions, degraded, err := s.produceQuestions(c.Request.Context(), qgen.GenerateInput{
		Topic:      req.Topic,
		Difficulty: difficulty,
		Types:      types,
	}, count)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if degraded {
		respondDegraded(c, gin.H{"questions": questions})
		return
	}
	respondOK(c, gin.H{"questions": questions})
}

func (s *Server) listTopics(c *gin.Context) {
	respondOK(c, gin.H{"topics": s.catalog.Topics()})
}
