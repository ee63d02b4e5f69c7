package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/scaffold"
	"github.com/sproutedu/sprout/internal/session"
	"github.com/sproutedu/sprout/internal/zpd"
)

type startRequest struct {
	StudentID  string              `json:"studentId" binding:"required"`
	Topic      string              `json:"topic" binding:"required"`
	Difficulty string              `json:"difficulty"`
	Count      int                 `json:"count"`
	Types      []string            `json:"types"`
	Questions  []question.Question `json:"questions"`
}

func (s *Server) startSession(c *gin.Context) {
	var req startRequest
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

	questions := req.Questions
	degraded := false
	if len(questions) == 0 {
		count := req.Count
		if count <= 0 {
			count = s.cfg.QuestionCount
		}
		if count > s.cfg.MaxQuestions {
			count = s.cfg.MaxQuestions
		}
		questions, degraded, err = s.produceQuestions(c.Request.Context(), qgen.GenerateInput{
			Topic:      req.Topic,
			Difficulty: difficulty,
			Types:      types,
		}, count)
		if err != nil {
			s.writeError(c, err)
			return
		}
	}

	sess, err := s.svc.Start(c.Request.Context(), session.StartInput{
		StudentID:  req.StudentID,
		Topic:      req.Topic,
		Difficulty: difficulty,
		Questions:  questions,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	if degraded {
		respondCreatedDegraded(c, sess)
		return
	}
	respondCreated(c, sess)
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.svc.Get(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	respondOK(c, sess)
}

func (s *Server) sessionReport(c *gin.Context) {
	sess, err := s.svc.Get(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	respondOK(c, session.BuildReport(sess))
}

type submitRequest struct {
	QuestionID  string `json:"questionId" binding:"required"`
	Value       string `json:"value"`
	TimeSpentMs int64  `json:"timeSpentMs"`
	HintsUsed   int    `json:"hintsUsed"`
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, err.Error())
		return
	}

	id := c.Param("id")
	result, err := s.svc.Submit(c.Request.Context(), id, session.SubmitInput{
		QuestionID:  req.QuestionID,
		Value:       req.Value,
		TimeSpentMs: req.TimeSpentMs,
		HintsUsed:   req.HintsUsed,
	})
	if err != nil {
		if taxonomy(err) {
			s.writeError(c, err)
			return
		}
		// Infrastructure fault mid-decision: hold the difficulty, serve
		// no intervention, let the student retry.
		s.log.Error("submit degraded", zap.String("session", id), zap.Error(err))
		respondDegraded(c, s.heldSubmit(id))
		return
	}
	respondOK(c, result)
}

// heldSubmit is the fallback submit payload: nothing resolved, the
// difficulty held in place.
func (s *Server) heldSubmit(sessionID string) *session.SubmitResult {
	hold := zpd.Decision{
		From:   question.DifficultyMedium,
		To:     question.DifficultyMedium,
		Reason: "steady state",
	}
	out := &session.SubmitResult{AttemptsLeft: 1}
	if sess, err := s.svc.Get(sessionID); err == nil {
		hold.From, hold.To = sess.Difficulty, sess.Difficulty
		out.Session = sess
	}
	out.Difficulty = &hold
	return out
}

func (s *Server) requestHint(c *gin.Context) {
	id := c.Param("id")
	result, err := s.svc.RequestHint(c.Request.Context(), id)
	if err != nil {
		if taxonomy(err) {
			s.writeError(c, err)
			return
		}
		s.log.Error("hint degraded", zap.String("session", id), zap.Error(err))
		out := &session.HintResult{Support: scaffold.Result{}}
		if sess, getErr := s.svc.Get(id); getErr == nil {
			out.HintsUsed = sess.HintsUsed
			out.Session = sess
		}
		respondDegraded(c, out)
		return
	}
	respondOK(c, result)
}

type frustrationRequest struct {
	Level float64 `json:"level"`
}

func (s *Server) reportFrustration(c *gin.Context) {
	var req frustrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, err.Error())
		return
	}

	d, err := s.svc.ReportFrustration(c.Request.Context(), c.Param("id"), req.Level)
	if err != nil {
		s.writeError(c, err)
		return
	}
	respondOK(c, gin.H{"intervention": d})
}

type checkInRequest struct {
	ElapsedMs int64 `json:"elapsedMs"`
}

func (s *Server) checkIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, err.Error())
		return
	}

	result, err := s.svc.CheckIn(c.Request.Context(), c.Param("id"), req.ElapsedMs)
	if err != nil {
		s.writeError(c, err)
		return
	}
	respondOK(c, result)
}

func (s *Server) abandonSession(c *gin.Context) {
	sess, err := s.svc.Abandon(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	respondOK(c, sess)
}

func parseTypes(raw []string) ([]question.Type, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	types := make([]question.Type, 0, len(raw))
	for _, r := range raw {
		t := question.Type(r)
		if !t.Valid() {
			return nil, &session.ConfigurationError{Reason: "unknown question type " + r}
		}
		types = append(types, t)
	}
	return types, nil
}
