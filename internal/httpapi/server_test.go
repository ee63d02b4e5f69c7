package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/session"
	"github.com/sproutedu/sprout/internal/store"
)

type fakePerf struct {
	states  map[string]performance.State
	loadErr error
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
	f.states[state.StudentID+"/"+state.Topic] = state
	return nil
}

type fakeProgress struct {
	records map[string]rewards.Progress
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
	f.records[p.StudentID] = p
	return nil
}

type fakeEvents struct {
	answers       []store.AnswerEventData
	sessions      []store.SessionEventData
	accuracy      float64
	interventions map[string]int
	lastOpts      store.QueryOpts
}

func (f *fakeEvents) AnswerHistory(_ context.Context, _, _ string, opts store.QueryOpts) ([]store.AnswerEventData, error) {
	f.lastOpts = opts
	return f.answers, nil
}

func (f *fakeEvents) SessionHistory(_ context.Context, _ string, opts store.QueryOpts) ([]store.SessionEventData, error) {
	f.lastOpts = opts
	return f.sessions, nil
}

func (f *fakeEvents) TopicAccuracy(context.Context, string, string) (float64, error) {
	return f.accuracy, nil
}

func (f *fakeEvents) InterventionCounts(context.Context, string) (map[string]int, error) {
	return f.interventions, nil
}

// numericQuestion builds a catalog entry with a full ladder and worked
// example whose numeric answer is known to the test.
func numericQuestion(id string, d question.Difficulty, prompt string, answer float64) question.Question {
	return question.Question{
		ID:            id,
		Topic:         "fractions",
		Subtopic:      "practice",
		Type:          question.TypeNumeric,
		Difficulty:    d,
		CognitiveLoad: question.LoadLow,
		Prompt:        prompt,
		Content:       question.Numeric{Answer: answer},
		Scaffolding: question.Scaffolding{
			Hints: []question.Hint{
				{Level: 1, Kind: question.HintNudge, Text: "Take it one step at a time."},
				{Level: 2, Kind: question.HintGuidance, Text: "Line the numbers up and work left to right."},
				{Level: 3, Kind: question.HintReveal, Text: "You are one small step from the answer."},
			},
			WorkedExample: &question.WorkedExample{
				Intro: "Here is a similar one.",
				Steps: []string{"Set it up.", "Work it through."},
			},
		},
		EstimatedTimeSeconds: 30,
		Points:               10,
	}
}

func testCatalog() map[string][]question.Question {
	return map[string][]question.Question{
		"fractions": {
			numericQuestion("cat-1", question.DifficultyMedium, "What is 4 + 6?", 10),
			numericQuestion("cat-2", question.DifficultyMedium, "What is 9 + 6?", 15),
			numericQuestion("cat-3", question.DifficultyEasy, "What is 2 + 3?", 5),
		},
	}
}

type testEnv struct {
	router *gin.Engine
	perf   *fakePerf
	prog   *fakeProgress
	events *fakeEvents
}

func newTestEnv(t *testing.T, gen qgen.Generator) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	perf := newFakePerf()
	prog := newFakeProgress()
	svc, err := session.New(session.DefaultConfig(), perf, prog, nil)
	if err != nil {
		t.Fatalf("session.New() error: %v", err)
	}

	events := &fakeEvents{interventions: map[string]int{}}
	srv, err := New(DefaultConfig(), Deps{
		Sessions:    svc,
		Generator:   gen,
		Catalog:     qgen.NewStatic(testCatalog()),
		Progress:    prog,
		Performance: perf,
		Events:      events,
		Log:         zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	return &testEnv{router: srv.Router(), perf: perf, prog: prog, events: events}
}

type envelope struct {
	Code     int             `json:"code"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Degraded bool            `json:"degraded"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %s %s: %v\nbody: %s", method, path, err, w.Body.String())
	}
	return w, env
}

// startSession starts a catalog-backed session and returns it decoded.
func (e *testEnv) startSession(t *testing.T, count int) session.Session {
	t.Helper()
	w, env := e.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"studentId": "stu-1",
		"topic":     "fractions",
		"count":     count,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("start: status %d, body %s", w.Code, w.Body.String())
	}
	var sess session.Session
	if err := json.Unmarshal(env.Data, &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return sess
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	w, _ := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestStartSession_CatalogFallbackIsDegraded(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"studentId": "stu-1",
		"topic":     "fractions",
		"count":     2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !resp.Degraded {
		t.Error("expected the degraded marker with no generator configured")
	}

	var sess session.Session
	if err := json.Unmarshal(resp.Data, &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if sess.ID == "" {
		t.Error("expected a session id")
	}
	if len(sess.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(sess.Questions))
	}
	if sess.Status != session.StatusInProgress {
		t.Errorf("status = %q, want in-progress", sess.Status)
	}
}

func TestStartSession_ExplicitQuestions(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"studentId": "stu-1",
		"topic":     "fractions",
		"questions": []question.Question{
			numericQuestion("q-1", question.DifficultyMedium, "What is 1 + 1?", 2),
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp.Degraded {
		t.Error("explicit questions are not a fallback")
	}
}

func TestStartSession_BadRequests(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing student", body: gin.H{"topic": "fractions"}},
		{name: "missing topic", body: gin.H{"studentId": "stu-1"}},
		{name: "bad difficulty", body: gin.H{"studentId": "stu-1", "topic": "fractions", "difficulty": "impossible"}},
		{name: "bad type", body: gin.H{"studentId": "stu-1", "topic": "fractions", "types": []string{"essay"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := env.do(t, http.MethodPost, "/api/v1/sessions", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestSubmit_FullSessionFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 2)

	// First question answered correctly.
	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"questionId":  sess.Questions[0].ID,
		"value":       answerFor(t, sess.Questions[0]),
		"timeSpentMs": 7000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit 1: status %d, body %s", w.Code, w.Body.String())
	}
	var result session.SubmitResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Correct || !result.Resolved {
		t.Errorf("expected a correct resolved answer, got %+v", result)
	}
	if result.Completed {
		t.Error("session should not be complete after one of two answers")
	}

	// Second question completes the session and pays out.
	w, resp = env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"questionId":  result.Session.Questions[1].ID,
		"value":       answerFor(t, result.Session.Questions[1]),
		"timeSpentMs": 7000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit 2: status %d, body %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Completed {
		t.Error("expected session completion")
	}
	if result.Rewards == nil || result.Rewards.XP == 0 {
		t.Errorf("expected a reward payout, got %+v", result.Rewards)
	}

	// Completed sessions accept no further answers.
	w, _ = env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"questionId": result.Session.Questions[1].ID,
		"value":      "0",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 on a finished session", w.Code)
	}
}

func TestSubmit_ErrorMapping(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 1)

	// Unknown session id.
	w, _ := env.do(t, http.MethodPost, "/api/v1/sessions/nope/answers", gin.H{
		"questionId": "q", "value": "1",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session: status = %d, want 404", w.Code)
	}

	// Answer for a question that is not active.
	w, _ = env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"questionId": "not-the-active-one", "value": "1",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("inactive question: status = %d, want 422", w.Code)
	}

	// Missing question id fails binding.
	w, _ = env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"value": "1",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing question id: status = %d, want 400", w.Code)
	}
}

func TestSubmit_InfrastructureFaultDegrades(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 1)

	env.perf.loadErr = fmt.Errorf("disk failure")

	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"questionId": sess.Questions[0].ID,
		"value":      answerFor(t, sess.Questions[0]),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 degraded", w.Code)
	}
	if !resp.Degraded {
		t.Fatal("expected the degraded marker")
	}

	var result session.SubmitResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Resolved {
		t.Error("a degraded submit resolves nothing")
	}
	if result.Difficulty == nil || result.Difficulty.Reason != "steady state" {
		t.Errorf("expected a hold decision, got %+v", result.Difficulty)
	}
	if result.Difficulty.From != result.Difficulty.To {
		t.Errorf("hold decision moved: %+v", result.Difficulty)
	}

	// The question is still answerable once the fault clears.
	env.perf.loadErr = nil
	w, _ = env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/answers", gin.H{
		"questionId": sess.Questions[0].ID,
		"value":      answerFor(t, sess.Questions[0]),
	})
	if w.Code != http.StatusOK {
		t.Errorf("retry after fault: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestHintLadderOverHTTP(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 1)
	path := "/api/v1/sessions/" + sess.ID + "/hints"

	wantLevels := []int{1, 2, 3}
	for _, want := range wantLevels {
		w, resp := env.do(t, http.MethodPost, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("hint: status %d, body %s", w.Code, w.Body.String())
		}
		var result session.HintResult
		if err := json.Unmarshal(resp.Data, &result); err != nil {
			t.Fatalf("decode hint result: %v", err)
		}
		if result.Support.Hint == nil || result.Support.Hint.Level != want {
			t.Fatalf("expected hint level %d, got %+v", want, result.Support)
		}
	}

	// Fourth request serves the worked example.
	_, resp := env.do(t, http.MethodPost, path, nil)
	var result session.HintResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode hint result: %v", err)
	}
	if result.Support.WorkedExample == nil {
		t.Fatalf("expected the worked example, got %+v", result.Support)
	}

	// Fifth request finds the ladder exhausted and escalates.
	_, resp = env.do(t, http.MethodPost, path, nil)
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode hint result: %v", err)
	}
	if !result.Support.Exhausted {
		t.Errorf("expected exhaustion, got %+v", result.Support)
	}
	if result.Intervention == nil {
		t.Error("expected an escalation intervention on exhaustion")
	}
}

func TestFrustrationEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 1)
	path := "/api/v1/sessions/" + sess.ID + "/frustration"

	w, resp := env.do(t, http.MethodPost, path, gin.H{"level": 0.9})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var data struct {
		Intervention struct {
			Kind     string `json:"kind"`
			Priority string `json:"priority"`
		} `json:"intervention"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Intervention.Kind != "break-suggestion" || data.Intervention.Priority != "urgent" {
		t.Errorf("got %+v, want an urgent break", data.Intervention)
	}

	// Levels outside [0, 1] are rejected before any state changes.
	w, _ = env.do(t, http.MethodPost, path, gin.H{"level": 1.5})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestCheckInEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 1)
	path := "/api/v1/sessions/" + sess.ID + "/checkins"

	w, resp := env.do(t, http.MethodPost, path, gin.H{"elapsedMs": 90000})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var result session.CheckInResult
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.NeedsIntervention {
		t.Error("90s on one question should need intervention")
	}

	w, _ = env.do(t, http.MethodPost, path, gin.H{"elapsedMs": -1})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 for negative elapsed", w.Code)
	}
}

func TestAbandonAndReport(t *testing.T) {
	env := newTestEnv(t, nil)
	sess := env.startSession(t, 2)

	w, resp := env.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/abandon", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("abandon: status %d, body %s", w.Code, w.Body.String())
	}
	var ended session.Session
	if err := json.Unmarshal(resp.Data, &ended); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ended.Status != session.StatusAbandoned {
		t.Errorf("status = %q, want abandoned", ended.Status)
	}
	if ended.Rewards != nil {
		t.Error("abandoned sessions never pay out")
	}

	w, resp = env.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report: status %d", w.Code)
	}
	var report session.Report
	if err := json.Unmarshal(resp.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Status != session.StatusAbandoned || report.TotalQuestions != 2 {
		t.Errorf("report = %+v", report)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)
	w, _ := env.do(t, http.MethodGet, "/api/v1/sessions/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

// flakyGen fails its first call with a retryable validation error and
// serves catalog questions after that.
type flakyGen struct {
	catalog *qgen.StaticGenerator
	calls   int
}

func (f *flakyGen) Generate(ctx context.Context, input qgen.GenerateInput) (*question.Question, error) {
	f.calls++
	if f.calls == 1 {
		return nil, &qgen.ValidationError{Validator: "structural", Message: "prompt too short", Retryable: true}
	}
	return f.catalog.Generate(ctx, input)
}

func TestGenerateQuestions_RetryableFailureGetsSecondPass(t *testing.T) {
	gen := &flakyGen{catalog: qgen.NewStatic(testCatalog())}
	env := newTestEnv(t, gen)

	w, resp := env.do(t, http.MethodPost, "/api/v1/questions/generate", gin.H{
		"topic": "fractions",
		"count": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp.Degraded {
		t.Error("a recovered generation is not a fallback")
	}
	var data struct {
		Questions []question.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(data.Questions))
	}
	if gen.calls != 3 {
		t.Errorf("generator calls = %d, want 3 (one miss, two hits)", gen.calls)
	}
}

// stuckGen fails every call the same retryable way.
type stuckGen struct{ calls int }

func (f *stuckGen) Generate(context.Context, qgen.GenerateInput) (*question.Question, error) {
	f.calls++
	return nil, &qgen.ValidationError{Validator: "metadata", Message: "points out of band", Retryable: true}
}

func TestGenerateQuestions_PersistentFailureFallsBack(t *testing.T) {
	gen := &stuckGen{}
	env := newTestEnv(t, gen)

	w, resp := env.do(t, http.MethodPost, "/api/v1/questions/generate", gin.H{
		"topic": "fractions",
		"count": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !resp.Degraded {
		t.Error("catalog fallback must carry the degraded marker")
	}
	var data struct {
		Questions []question.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Questions) != 2 {
		t.Errorf("questions = %d, want 2 from the catalog", len(data.Questions))
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2 (first pass and the retry)", gen.calls)
	}
}

// answerFor extracts the correct submission value from a test question.
func answerFor(t *testing.T, q question.Question) string {
	t.Helper()
	num, ok := q.Content.(question.Numeric)
	if !ok {
		t.Fatalf("test question %s is not numeric", q.ID)
	}
	return fmt.Sprintf("%g", num.Answer)
}
