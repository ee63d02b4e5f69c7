package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sproutedu/sprout/internal/intervention"
	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/zpd"
)

type fakePerf struct {
	states  map[string]performance.State
	loadErr error
	saveErr error
	saves   int
}

func newFakePerf() *fakePerf {
	return &fakePerf{states: make(map[string]performance.State)}
}

func (f *fakePerf) LoadPerformance(_ context.Context, studentID, topic string) (*performance.State, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	st, ok := f.states[studentID+"/"+topic]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (f *fakePerf) SavePerformance(_ context.Context, state performance.State) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.states[state.StudentID+"/"+state.Topic] = state
	return nil
}

type fakeProgress struct {
	records map[string]rewards.Progress
	saveErr error
	saves   int
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{records: make(map[string]rewards.Progress)}
}

func (f *fakeProgress) LoadProgress(_ context.Context, studentID string) (*rewards.Progress, error) {
	p, ok := f.records[studentID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProgress) SaveProgress(_ context.Context, p rewards.Progress) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.records[p.StudentID] = p
	return nil
}

type recordingSink struct {
	started       int
	resolved      int
	interventions []intervention.Decision
	ended         int
}

func (r *recordingSink) SessionStarted(context.Context, *Session) { r.started++ }

func (r *recordingSink) AnswerResolved(context.Context, *Session, Answer, performance.State, zpd.Decision) {
	r.resolved++
}

func (r *recordingSink) InterventionServed(_ context.Context, _ *Session, d intervention.Decision) {
	r.interventions = append(r.interventions, d)
}

func (r *recordingSink) SessionEnded(context.Context, *Session) { r.ended++ }

func newTestService(t *testing.T, cfg Config) (*Service, *fakePerf, *fakeProgress, *recordingSink) {
	t.Helper()
	perf := newFakePerf()
	progress := newFakeProgress()
	sink := &recordingSink{}
	svc, err := New(cfg, perf, progress, sink)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	return svc, perf, progress, sink
}

// scaffolded builds a multiple-choice question with a full hint ladder
// and a worked example. "2/4" is the correct answer.
func scaffolded(id string, d question.Difficulty) question.Question {
	return question.Question{
		ID:            id,
		Topic:         "fractions",
		Subtopic:      "equivalent-fractions",
		Type:          question.TypeMultipleChoice,
		Difficulty:    d,
		CognitiveLoad: question.LoadLow,
		Prompt:        "Which fraction equals one half?",
		Content: question.MultipleChoice{
			Choices:      []string{"1/3", "2/4", "3/5", "5/8"},
			CorrectIndex: 1,
		},
		Scaffolding: question.Scaffolding{
			Hints: []question.Hint{
				{Level: 1, Kind: question.HintNudge, Text: "Try doubling both numbers in 1/2."},
				{Level: 2, Kind: question.HintGuidance, Text: "Multiply the top and bottom of 1/2 by 2."},
				{Level: 3, Kind: question.HintReveal, Text: "1/2 times 2/2 gives 2/4."},
			},
			WorkedExample: &question.WorkedExample{
				Intro: "Finding a fraction equal to 1/3.",
				Steps: []string{"Start with 1/3.", "Multiply top and bottom by 2.", "You get 2/6."},
			},
		},
		EstimatedTimeSeconds: 30,
		Points:               10,
	}
}

// bare builds the same question with no scaffolding at all.
func bare(id string, d question.Difficulty) question.Question {
	q := scaffolded(id, d)
	q.Scaffolding = question.Scaffolding{}
	return q
}

func startSession(t *testing.T, svc *Service, qs ...question.Question) *Session {
	t.Helper()
	s, err := svc.Start(context.Background(), StartInput{
		StudentID: "kid-1",
		Topic:     "fractions",
		Questions: qs,
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return s
}

func submit(t *testing.T, svc *Service, sessionID, questionID, value string, ms int64) *SubmitResult {
	t.Helper()
	res, err := svc.Submit(context.Background(), sessionID, SubmitInput{
		QuestionID:  questionID,
		Value:       value,
		TimeSpentMs: ms,
	})
	if err != nil {
		t.Fatalf("Submit(%s) error: %v", questionID, err)
	}
	return res
}

func TestStartValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	ctx := context.Background()

	tests := []struct {
		name string
		in   StartInput
	}{
		{"empty question list", StartInput{StudentID: "kid-1", Topic: "fractions"}},
		{"missing student", StartInput{Topic: "fractions", Questions: []question.Question{scaffolded("q1", question.DifficultyMedium)}}},
		{"missing topic", StartInput{StudentID: "kid-1", Questions: []question.Question{scaffolded("q1", question.DifficultyMedium)}}},
		{"unknown difficulty", StartInput{StudentID: "kid-1", Topic: "fractions", Difficulty: "expert", Questions: []question.Question{scaffolded("q1", question.DifficultyMedium)}}},
		{"invalid question", StartInput{StudentID: "kid-1", Topic: "fractions", Questions: []question.Question{{ID: "q1"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Start(ctx, tt.in)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Start() error = %v, want ConfigurationError", err)
			}
		})
	}
}

func TestStartDefaultsToMedium(t *testing.T) {
	svc, _, _, sink := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	if s.Difficulty != question.DifficultyMedium {
		t.Errorf("Difficulty = %q, want %q", s.Difficulty, question.DifficultyMedium)
	}
	if s.Status != StatusInProgress {
		t.Errorf("Status = %q, want %q", s.Status, StatusInProgress)
	}
	if s.Emotion != intervention.EmotionNeutral {
		t.Errorf("Emotion = %q, want %q", s.Emotion, intervention.EmotionNeutral)
	}
	if sink.started != 1 {
		t.Errorf("started events = %d, want 1", sink.started)
	}
}

// Three quick, hint-free correct answers on medium: the streak reaches
// three, difficulty steps up for mastery, and the session pays
// 3 x (10 base + 10 medium + 5 speed) + 2 x 3 consecutive = 81 XP.
func TestRunThreeQuickCorrectAnswers(t *testing.T) {
	svc, perf, progress, sink := newTestService(t, DefaultConfig())
	s := startSession(t, svc,
		scaffolded("q1", question.DifficultyMedium),
		scaffolded("q2", question.DifficultyMedium),
		scaffolded("q3", question.DifficultyMedium),
	)

	submit(t, svc, s.ID, "q1", "2/4", 7_000)
	submit(t, svc, s.ID, "q2", "2/4", 7_000)
	res := submit(t, svc, s.ID, "q3", "2/4", 7_000)

	if !res.Completed {
		t.Fatal("final submit did not complete the session")
	}
	if res.Session.Status != StatusCompleted {
		t.Errorf("Status = %q, want %q", res.Session.Status, StatusCompleted)
	}
	if res.Difficulty.To != question.DifficultyHard || res.Difficulty.Reason != zpd.ReasonMasteryStreak {
		t.Errorf("difficulty decision = %+v, want up to hard for %q", res.Difficulty, zpd.ReasonMasteryStreak)
	}
	if res.Rewards == nil {
		t.Fatal("Rewards missing on completion")
	}
	if res.Rewards.XP != 81 {
		t.Errorf("session XP = %d, want 81", res.Rewards.XP)
	}
	if res.Rewards.LevelAfter != 1 || res.Rewards.LeveledUp {
		t.Errorf("level = %d leveledUp = %v, want 1 false", res.Rewards.LevelAfter, res.Rewards.LeveledUp)
	}
	if res.Intervention.Kind != intervention.KindEncouragement || res.Intervention.Priority != intervention.PriorityHigh {
		t.Errorf("final intervention = %+v, want celebratory encouragement", res.Intervention)
	}
	if res.Session.Emotion != intervention.EmotionExcited {
		t.Errorf("Emotion = %q, want %q", res.Session.Emotion, intervention.EmotionExcited)
	}

	state := perf.states["kid-1/fractions"]
	if state.Streak != 3 || state.TotalCorrect != 3 {
		t.Errorf("performance streak = %d correct = %d, want 3 3", state.Streak, state.TotalCorrect)
	}
	if progress.saves != 1 {
		t.Errorf("progress saves = %d, want 1", progress.saves)
	}
	if sink.resolved != 3 || sink.ended != 1 {
		t.Errorf("sink resolved = %d ended = %d, want 3 1", sink.resolved, sink.ended)
	}
}

// Two straight wrong answers on easy: difficulty steps down for the
// struggle pattern and the second miss asks for a topic switch.
func TestRunTwoWrongAnswersOnEasy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 1
	svc, perf, _, _ := newTestService(t, cfg)

	s, err := svc.Start(context.Background(), StartInput{
		StudentID:  "kid-1",
		Topic:      "fractions",
		Difficulty: question.DifficultyEasy,
		Questions: []question.Question{
			scaffolded("q1", question.DifficultyEasy),
			scaffolded("q2", question.DifficultyEasy),
		},
	})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	first := submit(t, svc, s.ID, "q1", "1/3", 20_000)
	if !first.Resolved || first.Correct {
		t.Fatalf("first answer resolved = %v correct = %v, want true false", first.Resolved, first.Correct)
	}
	if first.Difficulty.Moved() {
		t.Errorf("difficulty moved on a single miss: %+v", first.Difficulty)
	}

	second := submit(t, svc, s.ID, "q2", "1/3", 20_000)
	if second.Difficulty.To != question.DifficultyBeginner || second.Difficulty.Reason != zpd.ReasonStruggleDetected {
		t.Errorf("difficulty decision = %+v, want down to beginner for %q", second.Difficulty, zpd.ReasonStruggleDetected)
	}
	if second.Intervention.Kind != intervention.KindTopicSwitch || second.Intervention.Priority != intervention.PriorityHigh {
		t.Errorf("intervention = %+v, want topic switch at high priority", second.Intervention)
	}
	if second.Rewards.XP != 0 {
		t.Errorf("session XP = %d, want 0", second.Rewards.XP)
	}

	state := perf.states["kid-1/fractions"]
	if state.Streak != 0 {
		t.Errorf("performance streak = %d, want 0", state.Streak)
	}
}

func TestRetryFlowServesSupportThenResolves(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc,
		scaffolded("q1", question.DifficultyMedium),
		scaffolded("q2", question.DifficultyMedium),
	)

	first := submit(t, svc, s.ID, "q1", "1/3", 5_000)
	if first.Resolved {
		t.Fatal("first miss resolved the question")
	}
	if first.Attempts != 1 || first.AttemptsLeft != 2 {
		t.Errorf("attempts = %d left = %d, want 1 2", first.Attempts, first.AttemptsLeft)
	}
	if first.Intervention.Kind != intervention.KindEncouragement {
		t.Errorf("first miss intervention = %q, want encouragement", first.Intervention.Kind)
	}
	if first.Answer != nil {
		t.Error("unresolved attempt recorded an answer")
	}

	second := submit(t, svc, s.ID, "q1", "3/5", 5_000)
	if second.Resolved {
		t.Fatal("second miss resolved the question")
	}
	if second.Intervention.Kind != intervention.KindHint {
		t.Errorf("second miss intervention = %q, want hint", second.Intervention.Kind)
	}
	if second.Support == nil || second.Support.Hint == nil {
		t.Fatal("second miss served no hint")
	}
	if second.Support.Hint.Level != 1 {
		t.Errorf("hint level = %d, want 1", second.Support.Hint.Level)
	}
	if second.Session.HintsUsed != 1 {
		t.Errorf("session hints used = %d, want 1", second.Session.HintsUsed)
	}

	third := submit(t, svc, s.ID, "q1", "2/4", 5_000)
	if !third.Resolved || !third.Correct {
		t.Fatalf("third attempt resolved = %v correct = %v, want true true", third.Resolved, third.Correct)
	}
	if third.Answer.Attempts != 3 || third.Answer.HintsUsed != 1 {
		t.Errorf("answer attempts = %d hints = %d, want 3 1", third.Answer.Attempts, third.Answer.HintsUsed)
	}
	if third.Answer.TimeSpentMs != 15_000 {
		t.Errorf("answer time = %dms, want cumulative 15000", third.Answer.TimeSpentMs)
	}
	if third.Session.Index != 1 || third.Session.Attempts != 0 || third.Session.HintsUsed != 0 {
		t.Errorf("session did not advance cleanly: index = %d attempts = %d hints = %d",
			third.Session.Index, third.Session.Attempts, third.Session.HintsUsed)
	}
}

func TestRetryOnBareQuestionSuggestsBreak(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, bare("q1", question.DifficultyMedium), bare("q2", question.DifficultyMedium))

	submit(t, svc, s.ID, "q1", "1/3", 5_000)
	second := submit(t, svc, s.ID, "q1", "3/5", 5_000)

	if second.Intervention.Kind != intervention.KindBreak {
		t.Errorf("intervention = %q, want break suggestion", second.Intervention.Kind)
	}
	if second.Intervention.Priority != intervention.PriorityHigh {
		t.Errorf("priority = %q, want high", second.Intervention.Priority)
	}
	if second.Session.Emotion != intervention.EmotionFrustrated {
		t.Errorf("Emotion = %q, want %q", second.Session.Emotion, intervention.EmotionFrustrated)
	}
}

func TestWrongAtMaxAttemptsResolvesIncorrect(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc,
		scaffolded("q1", question.DifficultyMedium),
		scaffolded("q2", question.DifficultyMedium),
	)

	submit(t, svc, s.ID, "q1", "1/3", 5_000)
	submit(t, svc, s.ID, "q1", "1/3", 5_000)
	third := submit(t, svc, s.ID, "q1", "1/3", 5_000)

	if !third.Resolved || third.Correct {
		t.Fatalf("resolved = %v correct = %v, want true false", third.Resolved, third.Correct)
	}
	if third.Answer == nil || third.Answer.Correct {
		t.Error("resolving miss was not recorded as incorrect")
	}
	if third.Session.Index != 1 {
		t.Errorf("session index = %d, want 1", third.Session.Index)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "nope", SubmitInput{QuestionID: "q1", Value: "2/4"}); err == nil {
		t.Error("unknown session accepted")
	}

	var rangeErr *OutOfRangeError
	_, err := svc.Submit(ctx, s.ID, SubmitInput{QuestionID: "q9", Value: "2/4"})
	if !errors.As(err, &rangeErr) || rangeErr.Field != "questionId" {
		t.Errorf("stale question error = %v, want OutOfRangeError on questionId", err)
	}

	_, err = svc.Submit(ctx, s.ID, SubmitInput{QuestionID: "q1", Value: "2/4", TimeSpentMs: -1})
	if !errors.As(err, &rangeErr) || rangeErr.Field != "timeSpentMs" {
		t.Errorf("negative time error = %v, want OutOfRangeError on timeSpentMs", err)
	}

	got, getErr := svc.Get(s.ID)
	if getErr != nil {
		t.Fatalf("Get() error: %v", getErr)
	}
	if got.Attempts != 0 || len(got.Answers) != 0 {
		t.Errorf("rejected submits left marks: attempts = %d answers = %d", got.Attempts, len(got.Answers))
	}
}

func TestAbandonSkipsRewards(t *testing.T) {
	svc, _, progress, sink := newTestService(t, DefaultConfig())
	s := startSession(t, svc,
		scaffolded("q1", question.DifficultyMedium),
		scaffolded("q2", question.DifficultyMedium),
	)
	ctx := context.Background()

	submit(t, svc, s.ID, "q1", "2/4", 5_000)

	got, err := svc.Abandon(ctx, s.ID)
	if err != nil {
		t.Fatalf("Abandon() error: %v", err)
	}
	if got.Status != StatusAbandoned {
		t.Errorf("Status = %q, want %q", got.Status, StatusAbandoned)
	}
	if got.Rewards != nil {
		t.Error("abandoned session carries rewards")
	}
	if progress.saves != 0 {
		t.Errorf("progress saves = %d, want 0", progress.saves)
	}
	if sink.ended != 1 {
		t.Errorf("ended events = %d, want 1", sink.ended)
	}

	var cfgErr *ConfigurationError
	if _, err := svc.Submit(ctx, s.ID, SubmitInput{QuestionID: "q2", Value: "2/4"}); !errors.As(err, &cfgErr) {
		t.Errorf("submit after abandon error = %v, want ConfigurationError", err)
	}
	if _, err := svc.Abandon(ctx, s.ID); !errors.As(err, &cfgErr) {
		t.Errorf("second abandon error = %v, want ConfigurationError", err)
	}
}

func TestCompletedSessionIsFinal(t *testing.T) {
	svc, _, progress, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	ctx := context.Background()

	res := submit(t, svc, s.ID, "q1", "2/4", 5_000)
	if !res.Completed {
		t.Fatal("session did not complete")
	}
	if progress.saves != 1 {
		t.Fatalf("progress saves = %d, want 1", progress.saves)
	}

	var cfgErr *ConfigurationError
	if _, err := svc.Submit(ctx, s.ID, SubmitInput{QuestionID: "q1", Value: "2/4"}); !errors.As(err, &cfgErr) {
		t.Errorf("submit after completion error = %v, want ConfigurationError", err)
	}
	if _, err := svc.Abandon(ctx, s.ID); !errors.As(err, &cfgErr) {
		t.Errorf("abandon after completion error = %v, want ConfigurationError", err)
	}
	if progress.saves != 1 {
		t.Errorf("progress saves = %d after rejected calls, want 1", progress.saves)
	}
}

func TestRequestHintClimbsTheLadder(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	ctx := context.Background()

	for i, want := range []int{1, 2, 3} {
		res, err := svc.RequestHint(ctx, s.ID)
		if err != nil {
			t.Fatalf("RequestHint() #%d error: %v", i+1, err)
		}
		if res.Support.Hint == nil || res.Support.Hint.Level != want {
			t.Fatalf("hint #%d = %+v, want level %d", i+1, res.Support.Hint, want)
		}
		if res.HintsUsed != i+1 {
			t.Errorf("hints used = %d, want %d", res.HintsUsed, i+1)
		}
	}

	res, err := svc.RequestHint(ctx, s.ID)
	if err != nil {
		t.Fatalf("RequestHint() worked example error: %v", err)
	}
	if res.Support.WorkedExample == nil {
		t.Fatal("ladder did not fall through to the worked example")
	}

	res, err = svc.RequestHint(ctx, s.ID)
	if err != nil {
		t.Fatalf("RequestHint() exhausted error: %v", err)
	}
	if !res.Support.Exhausted {
		t.Fatal("ladder did not report exhaustion")
	}
	if res.Intervention == nil || res.Intervention.Kind != intervention.KindBreak {
		t.Errorf("exhaustion escalation = %+v, want break suggestion", res.Intervention)
	}
	if res.HintsUsed != 3 {
		t.Errorf("hints used = %d, want 3", res.HintsUsed)
	}
}

func TestReportFrustration(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	ctx := context.Background()

	var rangeErr *OutOfRangeError
	if _, err := svc.ReportFrustration(ctx, s.ID, 1.2); !errors.As(err, &rangeErr) {
		t.Errorf("level 1.2 error = %v, want OutOfRangeError", err)
	}
	if _, err := svc.ReportFrustration(ctx, s.ID, -0.1); !errors.As(err, &rangeErr) {
		t.Errorf("level -0.1 error = %v, want OutOfRangeError", err)
	}

	d, err := svc.ReportFrustration(ctx, s.ID, 0.3)
	if err != nil {
		t.Fatalf("ReportFrustration(0.3) error: %v", err)
	}
	if d.Kind != intervention.KindEncouragement || d.Priority != intervention.PriorityMedium {
		t.Errorf("mild frustration decision = %+v, want medium encouragement", d)
	}

	d, err = svc.ReportFrustration(ctx, s.ID, 0.8)
	if err != nil {
		t.Fatalf("ReportFrustration(0.8) error: %v", err)
	}
	if d.Kind != intervention.KindBreak || d.Priority != intervention.PriorityUrgent {
		t.Errorf("high frustration decision = %+v, want urgent break", d)
	}

	got, err := svc.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Emotion != intervention.EmotionFrustrated {
		t.Errorf("Emotion = %q, want %q", got.Emotion, intervention.EmotionFrustrated)
	}
	if got.Frustration != 0.8 {
		t.Errorf("Frustration = %v, want 0.8", got.Frustration)
	}
}

func TestCheckIn(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	ctx := context.Background()

	res, err := svc.CheckIn(ctx, s.ID, 5_000)
	if err != nil {
		t.Fatalf("CheckIn() error: %v", err)
	}
	if res.NeedsIntervention {
		t.Error("fresh question flagged for intervention")
	}

	res, err = svc.CheckIn(ctx, s.ID, 61_000)
	if err != nil {
		t.Fatalf("CheckIn() error: %v", err)
	}
	if !res.NeedsIntervention {
		t.Fatal("slow answer not flagged")
	}
	if res.Intervention == nil {
		t.Fatal("flagged check-in carried no intervention")
	}

	var rangeErr *OutOfRangeError
	if _, err := svc.CheckIn(ctx, s.ID, -1); !errors.As(err, &rangeErr) {
		t.Errorf("negative elapsed error = %v, want OutOfRangeError", err)
	}
}

func TestSaveFailureLeavesQuestionOpen(t *testing.T) {
	svc, perf, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	ctx := context.Background()

	perf.saveErr = errors.New("disk full")
	_, err := svc.Submit(ctx, s.ID, SubmitInput{QuestionID: "q1", Value: "2/4", TimeSpentMs: 5_000})
	if err == nil {
		t.Fatal("submit succeeded despite failing save")
	}

	got, getErr := svc.Get(s.ID)
	if getErr != nil {
		t.Fatalf("Get() error: %v", getErr)
	}
	if len(got.Answers) != 0 || got.Status != StatusInProgress {
		t.Errorf("failed save mutated session: answers = %d status = %q", len(got.Answers), got.Status)
	}

	perf.saveErr = nil
	res := submit(t, svc, s.ID, "q1", "2/4", 5_000)
	if !res.Completed {
		t.Error("retried submit did not complete the session")
	}
}

func TestPerformanceCarriesAcrossSessions(t *testing.T) {
	svc, perf, _, _ := newTestService(t, DefaultConfig())

	s1 := startSession(t, svc, scaffolded("q1", question.DifficultyMedium))
	submit(t, svc, s1.ID, "q1", "2/4", 5_000)

	s2 := startSession(t, svc, scaffolded("q2", question.DifficultyMedium))
	submit(t, svc, s2.ID, "q2", "2/4", 5_000)

	state := perf.states["kid-1/fractions"]
	if state.Streak != 2 || state.TotalAnswered != 2 {
		t.Errorf("streak = %d answered = %d, want 2 2", state.Streak, state.TotalAnswered)
	}
}

func TestBuildReport(t *testing.T) {
	svc, _, _, _ := newTestService(t, DefaultConfig())
	s := startSession(t, svc,
		scaffolded("q1", question.DifficultyMedium),
		scaffolded("q2", question.DifficultyMedium),
	)

	submit(t, svc, s.ID, "q1", "2/4", 5_000)
	submit(t, svc, s.ID, "q2", "1/3", 5_000)
	submit(t, svc, s.ID, "q2", "1/3", 5_000)
	final := submit(t, svc, s.ID, "q2", "1/3", 5_000)

	report := BuildReport(final.Session)
	if report.TotalQuestions != 2 || report.TotalAnswered != 2 {
		t.Errorf("questions = %d answered = %d, want 2 2", report.TotalQuestions, report.TotalAnswered)
	}
	if report.TotalCorrect != 1 {
		t.Errorf("correct = %d, want 1", report.TotalCorrect)
	}
	if report.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", report.Accuracy)
	}
	if report.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", report.Status, StatusCompleted)
	}
	if report.Rewards == nil {
		t.Error("report dropped the reward summary")
	}
}
