// Package app assembles the engine's dependency graph: store, model
// provider, question generation, session service, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/config"
	"github.com/sproutedu/sprout/internal/httpapi"
	"github.com/sproutedu/sprout/internal/llm"
	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/session"
	"github.com/sproutedu/sprout/internal/store"
)

// App is the wired server process.
type App struct {
	cfg  *config.Config
	log  *zap.Logger
	st   *store.Store
	http *http.Server
}

// New opens the store and wires every collaborator. The model provider
// is optional: without one the engine serves catalog questions and
// marks generation responses degraded.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger, dbPath string) (*App, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	perf := st.PerformanceRepo()
	prog := st.ProgressRepo()
	if cfg.Database.SnapshotKeep > 0 {
		perf.Keep = cfg.Database.SnapshotKeep
		prog.Keep = cfg.Database.SnapshotKeep
	}
	events := st.EventRepo()

	svc, err := session.New(session.DefaultConfig(), perf, prog, store.NewRecorder(events, log))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build session service: %w", err)
	}

	var gen qgen.Generator
	provider, err := BuildProvider(ctx, cfg.LLM, events)
	if err != nil {
		log.Warn("model provider unavailable, serving catalog questions only", zap.Error(err))
	} else {
		gen = qgen.New(provider, qgen.DefaultConfig())
		log.Info("model provider ready", zap.String("model", provider.ModelID()))
	}

	gin.SetMode(cfg.Server.Mode)
	srv, err := httpapi.New(httpapi.Config{AllowedOrigins: cfg.Server.AllowedOrigins}, httpapi.Deps{
		Sessions:    svc,
		Generator:   gen,
		Catalog:     qgen.NewStatic(nil),
		Progress:    prog,
		Performance: perf,
		Events:      events,
		Log:         log,
	})
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build http server: %w", err)
	}

	return &App{
		cfg: cfg,
		log: log,
		st:  st,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      srv.Router(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// Run serves until the context is canceled, then drains in-flight
// requests within the configured shutdown window.
func (a *App) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", a.http.Addr))
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.http.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.st.Close()
}

// BuildProvider resolves the model provider: the explicit configuration
// first, then the generic API key env vars. A nil RequestLog disables
// request event logging.
func BuildProvider(ctx context.Context, cfg config.LLMConfig, rl llm.RequestLog) (llm.Provider, error) {
	llmCfg := cfg.ToLLM()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		llmCfg = discovered
	}
	return llm.NewProvider(ctx, llmCfg, rl)
}
