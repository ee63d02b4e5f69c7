package httpapi

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/session"
	"github.com/sproutedu/sprout/internal/store"
)

// ProgressReader loads cumulative reward records.
// *store.ProgressRepo satisfies it.
type ProgressReader interface {
	LoadProgress(ctx context.Context, studentID string) (*rewards.Progress, error)
}

// PerformanceReader loads per-(student, topic) performance state.
// *store.PerformanceRepo satisfies it.
type PerformanceReader interface {
	LoadPerformance(ctx context.Context, studentID, topic string) (*performance.State, error)
}

// EventReader queries the event log. store.EventRepo satisfies it.
type EventReader interface {
	AnswerHistory(ctx context.Context, studentID, topic string, opts store.QueryOpts) ([]store.AnswerEventData, error)
	SessionHistory(ctx context.Context, studentID string, opts store.QueryOpts) ([]store.SessionEventData, error)
	TopicAccuracy(ctx context.Context, studentID, topic string) (float64, error)
	InterventionCounts(ctx context.Context, studentID string) (map[string]int, error)
}

// Deps are the collaborators the server fronts.
type Deps struct {
	Sessions    *session.Service
	Generator   qgen.Generator // model-backed; nil when no provider is configured
	Catalog     *qgen.StaticGenerator
	Progress    ProgressReader
	Performance PerformanceReader
	Events      EventReader
	Log         *zap.Logger
}

// Server exposes the tutoring engine over HTTP.
type Server struct {
	cfg     Config
	svc     *session.Service
	gen     qgen.Generator
	catalog *qgen.StaticGenerator
	prog    ProgressReader
	perf    PerformanceReader
	events  EventReader
	log     *zap.Logger
}

// New wires a Server. Sessions, Catalog, Progress, Performance, Events,
// and Log are required; Generator may be nil, in which case every
// question comes from the catalog and generation responses carry the
// degraded marker.
func New(cfg Config, deps Deps) (*Server, error) {
	switch {
	case deps.Sessions == nil:
		return nil, fmt.Errorf("httpapi: session service is required")
	case deps.Catalog == nil:
		return nil, fmt.Errorf("httpapi: catalog generator is required")
	case deps.Progress == nil:
		return nil, fmt.Errorf("httpapi: progress reader is required")
	case deps.Performance == nil:
		return nil, fmt.Errorf("httpapi: performance reader is required")
	case deps.Events == nil:
		return nil, fmt.Errorf("httpapi: event reader is required")
	case deps.Log == nil:
		return nil, fmt.Errorf("httpapi: logger is required")
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = DefaultConfig().AllowedOrigins
	}
	if cfg.QuestionCount < 1 {
		cfg.QuestionCount = DefaultConfig().QuestionCount
	}
	if cfg.MaxQuestions < cfg.QuestionCount {
		cfg.MaxQuestions = DefaultConfig().MaxQuestions
	}
	if cfg.HistoryLimit < 1 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}

	return &Server{
		cfg:     cfg,
		svc:     deps.Sessions,
		gen:     deps.Generator,
		catalog: deps.Catalog,
		prog:    deps.Progress,
		perf:    deps.Performance,
		events:  deps.Events,
		log:     deps.Log,
	}, nil
}

// Router builds the gin engine with middleware and all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(s.log), Recovery(s.log), corsMiddleware(s.cfg.AllowedOrigins))

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", s.startSession)
			sessions.GET("/:id", s.getSession)
			sessions.GET("/:id/report", s.sessionReport)
			sessions.POST("/:id/answers", s.submitAnswer)
			sessions.POST("/:id/hints", s.requestHint)
			sessions.POST("/:id/frustration", s.reportFrustration)
			sessions.POST("/:id/checkins", s.checkIn)
			sessions.POST("/:id/abandon", s.abandonSession)
		}

		students := v1.Group("/students")
		{
			students.GET("/:id/progress", s.studentProgress)
			students.GET("/:id/performance", s.studentPerformance)
			students.GET("/:id/answers", s.studentAnswers)
			students.GET("/:id/sessions", s.studentSessions)
		}

		v1.GET("/topics", s.listTopics)
		v1.POST("/questions/generate", s.generateQuestions)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	respondOK(c, gin.H{"status": "up"})
}
