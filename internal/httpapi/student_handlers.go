package httpapi

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/store"
)

func (s *Server) studentProgress(c *gin.Context) {
	id := c.Param("id")
	p, err := s.prog.LoadProgress(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if p == nil {
		fresh := rewards.NewProgress(id)
		p = &fresh
	}
	respondOK(c, p)
}

func (s *Server) studentPerformance(c *gin.Context) {
	id := c.Param("id")
	topic := c.Query("topic")
	if topic == "" {
		fail(c, 400, "topic query parameter is required")
		return
	}

	state, err := s.perf.LoadPerformance(c.Request.Context(), id, topic)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if state == nil {
		fresh := performance.New(id, topic)
		state = &fresh
	}

	allTime, err := s.events.TopicAccuracy(c.Request.Context(), id, topic)
	if err != nil {
		s.writeError(c, err)
		return
	}

	respondOK(c, gin.H{
		"state":           state,
		"allTimeAccuracy": allTime,
	})
}

func (s *Server) studentAnswers(c *gin.Context) {
	id := c.Param("id")
	topic := c.Query("topic")
	if topic == "" {
		fail(c, 400, "topic query parameter is required")
		return
	}

	rows, err := s.events.AnswerHistory(c.Request.Context(), id, topic, store.QueryOpts{
		Limit: s.historyLimit(c),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	respondOK(c, gin.H{"answers": rows})
}

func (s *Server) studentSessions(c *gin.Context) {
	id := c.Param("id")

	rows, err := s.events.SessionHistory(c.Request.Context(), id, store.QueryOpts{
		Limit: s.historyLimit(c),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	interventions, err := s.events.InterventionCounts(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	respondOK(c, gin.H{
		"sessions":      rows,
		"interventions": interventions,
	})
}

func (s *Server) historyLimit(c *gin.Context) int {
	limit := s.cfg.HistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	return limit
}
