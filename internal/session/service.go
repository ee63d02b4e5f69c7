package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sproutedu/sprout/internal/intervention"
	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/scaffold"
	"github.com/sproutedu/sprout/internal/zpd"
)

// PerformanceRepo persists per-(student, topic) performance state.
// Load returns nil with no error when nothing is stored yet.
type PerformanceRepo interface {
	LoadPerformance(ctx context.Context, studentID, topic string) (*performance.State, error)
	SavePerformance(ctx context.Context, state performance.State) error
}

// ProgressRepo persists cumulative reward records. Load returns nil
// with no error when the student has none yet.
type ProgressRepo interface {
	LoadProgress(ctx context.Context, studentID string) (*rewards.Progress, error)
	SaveProgress(ctx context.Context, p rewards.Progress) error
}

// EventSink receives the audit trail. Sinks get point-in-time session
// copies and own their error handling; a failing sink must never fail
// the operation that fed it.
type EventSink interface {
	SessionStarted(ctx context.Context, s *Session)
	AnswerResolved(ctx context.Context, s *Session, ans Answer, state performance.State, d zpd.Decision)
	InterventionServed(ctx context.Context, s *Session, d intervention.Decision)
	SessionEnded(ctx context.Context, s *Session)
}

// Service runs tutoring sessions. Operations on the same (student,
// topic) pair are serialized through a per-pair lock; different pairs
// run in parallel with no shared mutable state.
type Service struct {
	cfg      Config
	perf     PerformanceRepo
	progress ProgressRepo
	events   EventSink
	calc     *rewards.Calculator
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	locks    map[string]*sync.Mutex
}

// New wires a session service. The performance and progress
// repositories are required; the event sink may be nil.
func New(cfg Config, perf PerformanceRepo, progress ProgressRepo, events EventSink) (*Service, error) {
	if perf == nil {
		return nil, &ConfigurationError{Reason: "performance repository is required"}
	}
	if progress == nil {
		return nil, &ConfigurationError{Reason: "progress repository is required"}
	}
	badges := cfg.Badges
	if badges == nil {
		badges = rewards.DefaultBadges()
	}
	worlds := cfg.Worlds
	if worlds == nil {
		worlds = rewards.DefaultWorlds()
	}
	calc, err := rewards.New(cfg.Rewards, badges, worlds)
	if err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}

	return &Service{
		cfg:      cfg,
		perf:     perf,
		progress: progress,
		events:   events,
		calc:     calc,
		now:      time.Now,
		sessions: make(map[string]*Session),
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

// StartInput configures a new session. An empty difficulty falls back
// to medium.
type StartInput struct {
	StudentID  string
	Topic      string
	Difficulty question.Difficulty
	Questions  []question.Question
}

// Start validates the setup and opens a session in progress.
func (svc *Service) Start(ctx context.Context, in StartInput) (*Session, error) {
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = question.DifficultyMedium
	}
	s, err := newSession(uuid.NewString(), in.StudentID, in.Topic, in.Questions, difficulty, svc.now())
	if err != nil {
		return nil, err
	}

	svc.mu.Lock()
	svc.sessions[s.ID] = s
	svc.mu.Unlock()

	if svc.events != nil {
		svc.events.SessionStarted(ctx, s.snapshot())
	}
	return s.snapshot(), nil
}

// Get returns a point-in-time copy of a session.
func (svc *Service) Get(id string) (*Session, error) {
	s, err := svc.lookup(id)
	if err != nil {
		return nil, err
	}
	lock := svc.lockFor(s.StudentID, s.Topic)
	lock.Lock()
	defer lock.Unlock()
	return s.snapshot(), nil
}

// SubmitInput is one answer attempt. A zero Timestamp means now.
// HintsUsed lets callers that render hints themselves keep the
// session's count in step; the session never lowers its own count.
type SubmitInput struct {
	QuestionID  string    `json:"questionId"`
	Value       string    `json:"value"`
	TimeSpentMs int64     `json:"timeSpentMs"`
	HintsUsed   int       `json:"hintsUsed"`
	Timestamp   time.Time `json:"timestamp"`
}

// SubmitResult reports what one attempt did. Resolved is false while
// the student still has attempts left on the question.
type SubmitResult struct {
	Correct      bool                   `json:"correct"`
	Resolved     bool                   `json:"resolved"`
	Attempts     int                    `json:"attempts"`
	AttemptsLeft int                    `json:"attemptsLeft"`
	Answer       *Answer                `json:"answer,omitempty"`
	Support      *scaffold.Result       `json:"support,omitempty"`
	Intervention *intervention.Decision `json:"intervention,omitempty"`
	Difficulty   *zpd.Decision          `json:"difficulty,omitempty"`
	Completed    bool                   `json:"completed"`
	Rewards      *rewards.Summary       `json:"rewards,omitempty"`
	Session      *Session               `json:"session"`
}

// Submit processes one answer attempt against the active question.
// Wrong attempts below the retry limit keep the student on the
// question with struggle support; the resolving attempt records the
// answer, updates performance and difficulty, and advances.
func (svc *Service) Submit(ctx context.Context, sessionID string, in SubmitInput) (*SubmitResult, error) {
	s, err := svc.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	lock := svc.lockFor(s.StudentID, s.Topic)
	lock.Lock()
	defer lock.Unlock()

	if s.Status != StatusInProgress {
		return nil, &ConfigurationError{Reason: "session is " + string(s.Status)}
	}
	active := s.Active()
	if active == nil {
		return nil, &ConfigurationError{Reason: "no active question"}
	}
	if in.QuestionID != active.ID {
		return nil, &OutOfRangeError{Field: "questionId", Value: in.QuestionID}
	}
	if in.TimeSpentMs < 0 {
		return nil, &OutOfRangeError{Field: "timeSpentMs", Value: in.TimeSpentMs}
	}

	now := in.Timestamp
	if now.IsZero() {
		now = svc.now()
	}

	state, err := svc.loadState(ctx, s.StudentID, s.Topic)
	if err != nil {
		return nil, err
	}

	attempt := s.Attempts + 1
	correct := question.CheckAnswer(active, in.Value)

	if !correct && attempt < svc.cfg.MaxAttempts {
		return svc.retry(ctx, s, active, state, in, attempt), nil
	}
	return svc.resolve(ctx, s, active, state, in, attempt, correct, now)
}

// retry handles a wrong submission that still leaves attempts: nothing
// is recorded, struggle support is served, and the student stays on
// the question.
func (svc *Service) retry(ctx context.Context, s *Session, active *question.Question, state performance.State, in SubmitInput, attempt int) *SubmitResult {
	s.Attempts = attempt
	s.TimeSpentMs += in.TimeSpentMs
	if in.HintsUsed > s.HintsUsed {
		s.HintsUsed = in.HintsUsed
	}

	d := intervention.OnStruggle(attempt, active, svc.cfg.Intervention)
	var support *scaffold.Result
	switch d.Kind {
	case intervention.KindHint:
		res, ladder := scaffold.Next(active, state, svc.cfg.Scaffold, s.Ladder)
		s.Ladder = ladder
		support = &res
		switch {
		case res.Hint != nil:
			s.HintsUsed++
		case res.WorkedExample != nil:
			d = intervention.OnStruggle(svc.cfg.Intervention.EscalateAfterWrong, active, svc.cfg.Intervention)
		case res.Exhausted:
			d = intervention.OnStruggle(svc.cfg.Intervention.EscalateAfterWrong, nil, svc.cfg.Intervention)
		}
	case intervention.KindWorkedExample:
		s.Ladder.WorkedShown = true
		support = &scaffold.Result{WorkedExample: active.Scaffolding.WorkedExample}
	}

	s.applyDecision(d)
	if svc.events != nil {
		svc.events.InterventionServed(ctx, s.snapshot(), d)
	}

	return &SubmitResult{
		Attempts:     attempt,
		AttemptsLeft: svc.cfg.MaxAttempts - attempt,
		Support:      support,
		Intervention: &d,
		Session:      s.snapshot(),
	}
}

// resolve finishes the active question. Repository saves happen before
// any session mutation so a failed save leaves the session retryable.
func (svc *Service) resolve(ctx context.Context, s *Session, active *question.Question, state performance.State, in SubmitInput, attempt int, correct bool, now time.Time) (*SubmitResult, error) {
	hintsUsed := s.HintsUsed
	if in.HintsUsed > hintsUsed {
		hintsUsed = in.HintsUsed
	}
	ans := Answer{
		QuestionID:  active.ID,
		Value:       in.Value,
		Correct:     correct,
		TimeSpentMs: s.TimeSpentMs + in.TimeSpentMs,
		HintsUsed:   hintsUsed,
		Attempts:    attempt,
		Timestamp:   now,
	}

	obs := performance.Observation{
		QuestionID:  active.ID,
		Topic:       s.Topic,
		Subtopic:    active.Subtopic,
		Correct:     correct,
		TimeSpentMs: ans.TimeSpentMs,
		HintsUsed:   ans.HintsUsed,
		Timestamp:   now,
	}
	next := performance.RecordAnswer(state, obs, svc.cfg.Performance)

	completing := len(s.Answers)+1 == len(s.Questions)
	var (
		progress rewards.Progress
		summary  rewards.Summary
	)
	if completing {
		p, err := svc.loadProgress(ctx, s.StudentID)
		if err != nil {
			return nil, err
		}
		progress, summary = svc.calc.Apply(p, svc.answerResults(s, ans), now)
	}

	if err := svc.perf.SavePerformance(ctx, next); err != nil {
		return nil, fmt.Errorf("saving performance state: %w", err)
	}
	if completing {
		if err := svc.progress.SaveProgress(ctx, progress); err != nil {
			return nil, fmt.Errorf("saving progress: %w", err)
		}
	}

	s.Answers = append(s.Answers, ans)
	diff := zpd.Evaluate(s.Difficulty, next, svc.cfg.ZPD)
	s.Difficulty = diff.To

	var d intervention.Decision
	if correct {
		s.WrongStreak = 0
		d = intervention.OnMastery(next.Streak, svc.cfg.Intervention)
	} else {
		s.WrongStreak++
		ds := []intervention.Decision{intervention.OnStruggle(attempt, active, svc.cfg.Intervention)}
		if s.WrongStreak >= svc.cfg.Intervention.SwitchWrong {
			ds = append(ds, intervention.OnFrustration(s.Frustration, s.WrongStreak, svc.cfg.Intervention))
		}
		d = intervention.Strongest(ds...)
	}
	s.applyDecision(d)
	s.advance()

	result := &SubmitResult{
		Correct:      correct,
		Resolved:     true,
		Attempts:     attempt,
		Answer:       &ans,
		Intervention: &d,
		Difficulty:   &diff,
	}

	if completing {
		s.Status = StatusCompleted
		s.EndedAt = now
		sum := summary
		s.Rewards = &sum
		result.Completed = true
		result.Rewards = &sum
	}

	if svc.events != nil {
		svc.events.AnswerResolved(ctx, s.snapshot(), ans, next, diff)
		svc.events.InterventionServed(ctx, s.snapshot(), d)
		if completing {
			svc.events.SessionEnded(ctx, s.snapshot())
		}
	}

	result.Session = s.snapshot()
	return result, nil
}

// HintResult is what an explicit hint request served.
type HintResult struct {
	Support      scaffold.Result        `json:"support"`
	HintsUsed    int                    `json:"hintsUsed"`
	Intervention *intervention.Decision `json:"intervention,omitempty"`
	Session      *Session               `json:"session"`
}

// RequestHint serves the next rung of the active question's ladder.
// An exhausted ladder is reported as a result, with the escalation the
// student should see instead.
func (svc *Service) RequestHint(ctx context.Context, sessionID string) (*HintResult, error) {
	s, err := svc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	lock := svc.lockFor(s.StudentID, s.Topic)
	lock.Lock()
	defer lock.Unlock()

	if s.Status != StatusInProgress {
		return nil, &ConfigurationError{Reason: "session is " + string(s.Status)}
	}
	active := s.Active()
	if active == nil {
		return nil, &ConfigurationError{Reason: "no active question"}
	}

	state, err := svc.loadState(ctx, s.StudentID, s.Topic)
	if err != nil {
		return nil, err
	}

	res, ladder := scaffold.Next(active, state, svc.cfg.Scaffold, s.Ladder)
	s.Ladder = ladder

	out := &HintResult{Support: res}
	switch {
	case res.Hint != nil:
		s.HintsUsed++
		s.Phase = intervention.PhaseHinted
	case res.WorkedExample != nil:
		s.Phase = intervention.PhaseWorkedExample
	case res.Exhausted:
		d := intervention.OnStruggle(svc.cfg.Intervention.EscalateAfterWrong, nil, svc.cfg.Intervention)
		s.applyDecision(d)
		out.Intervention = &d
		if svc.events != nil {
			svc.events.InterventionServed(ctx, s.snapshot(), d)
		}
	}
	out.HintsUsed = s.HintsUsed
	out.Session = s.snapshot()
	return out, nil
}

// ReportFrustration records a frustration reading between 0 and 1 and
// returns the engine's response.
func (svc *Service) ReportFrustration(ctx context.Context, sessionID string, level float64) (*intervention.Decision, error) {
	if level < 0 || level > 1 {
		return nil, &OutOfRangeError{Field: "frustrationLevel", Value: level}
	}
	s, err := svc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	lock := svc.lockFor(s.StudentID, s.Topic)
	lock.Lock()
	defer lock.Unlock()

	if s.Status != StatusInProgress {
		return nil, &ConfigurationError{Reason: "session is " + string(s.Status)}
	}

	s.Frustration = level
	if level > svc.cfg.FrustratedAbove {
		s.Emotion = intervention.EmotionFrustrated
	}
	d := intervention.OnFrustration(level, s.WrongStreak, svc.cfg.Intervention)
	s.applyDecision(d)
	if svc.events != nil {
		svc.events.InterventionServed(ctx, s.snapshot(), d)
	}
	return &d, nil
}

// CheckInResult reports a stuck-check probe.
type CheckInResult struct {
	NeedsIntervention bool                   `json:"needsIntervention"`
	Intervention      *intervention.Decision `json:"intervention,omitempty"`
	Session           *Session               `json:"session"`
}

// CheckIn is the caller's periodic probe while the student sits on a
// question. ElapsedMs is wall-clock time on the active question as
// measured by the caller; the engine owns no timers of its own.
func (svc *Service) CheckIn(ctx context.Context, sessionID string, elapsedMs int64) (*CheckInResult, error) {
	if elapsedMs < 0 {
		return nil, &OutOfRangeError{Field: "elapsedMs", Value: elapsedMs}
	}
	s, err := svc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	lock := svc.lockFor(s.StudentID, s.Topic)
	lock.Lock()
	defer lock.Unlock()

	if s.Status != StatusInProgress {
		return nil, &ConfigurationError{Reason: "session is " + string(s.Status)}
	}
	active := s.Active()
	if active == nil {
		return nil, &ConfigurationError{Reason: "no active question"}
	}

	needed := intervention.NeedsIntervention(active, s.TimeSpentMs+elapsedMs, s.Attempts, s.HintsUsed, svc.cfg.Intervention)
	out := &CheckInResult{NeedsIntervention: needed}
	if needed {
		d := intervention.OnFrustration(s.Frustration, s.WrongStreak, svc.cfg.Intervention)
		s.applyDecision(d)
		out.Intervention = &d
		if svc.events != nil {
			svc.events.InterventionServed(ctx, s.snapshot(), d)
		}
	}
	out.Session = s.snapshot()
	return out, nil
}

// Abandon ends the session without rewards. Cumulative XP and badges
// stay untouched no matter how many answers were already in.
func (svc *Service) Abandon(ctx context.Context, sessionID string) (*Session, error) {
	s, err := svc.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	lock := svc.lockFor(s.StudentID, s.Topic)
	lock.Lock()
	defer lock.Unlock()

	if s.Status.Terminal() {
		return nil, &ConfigurationError{Reason: "session is " + string(s.Status)}
	}
	s.Status = StatusAbandoned
	s.EndedAt = svc.now()
	if svc.events != nil {
		svc.events.SessionEnded(ctx, s.snapshot())
	}
	return s.snapshot(), nil
}

func (svc *Service) lookup(id string) (*Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	s, ok := svc.sessions[id]
	if !ok {
		return nil, &OutOfRangeError{Field: "sessionId", Value: id}
	}
	return s, nil
}

func (svc *Service) lockFor(studentID, topic string) *sync.Mutex {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	key := studentID + "\x00" + topic
	l, ok := svc.locks[key]
	if !ok {
		l = &sync.Mutex{}
		svc.locks[key] = l
	}
	return l
}

func (svc *Service) loadState(ctx context.Context, studentID, topic string) (performance.State, error) {
	st, err := svc.perf.LoadPerformance(ctx, studentID, topic)
	if err != nil {
		return performance.State{}, fmt.Errorf("loading performance state: %w", err)
	}
	if st == nil {
		return performance.New(studentID, topic), nil
	}
	return *st, nil
}

func (svc *Service) loadProgress(ctx context.Context, studentID string) (rewards.Progress, error) {
	p, err := svc.progress.LoadProgress(ctx, studentID)
	if err != nil {
		return rewards.Progress{}, fmt.Errorf("loading progress: %w", err)
	}
	if p == nil {
		return rewards.NewProgress(studentID), nil
	}
	return *p, nil
}

// answerResults builds the reward view of the full answer log, final
// answer included. Answers resolve in question order, so positions
// line up.
func (svc *Service) answerResults(s *Session, final Answer) []rewards.AnswerResult {
	results := make([]rewards.AnswerResult, 0, len(s.Answers)+1)
	for i, a := range s.Answers {
		results = append(results, rewards.AnswerResult{
			Correct:     a.Correct,
			Difficulty:  s.Questions[i].Difficulty,
			TimeSpentMs: a.TimeSpentMs,
			HintsUsed:   a.HintsUsed,
		})
	}
	results = append(results, rewards.AnswerResult{
		Correct:     final.Correct,
		Difficulty:  s.Questions[len(s.Answers)].Difficulty,
		TimeSpentMs: final.TimeSpentMs,
		HintsUsed:   final.HintsUsed,
	})
	return results
}
