package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sproutedu/sprout/internal/llm"
	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/rewards"
	"github.com/sproutedu/sprout/internal/store"
)

func TestStudentProgress_FreshStudent(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, http.MethodGet, "/api/v1/students/new-kid/progress", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var p rewards.Progress
	if err := json.Unmarshal(resp.Data, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.StudentID != "new-kid" || p.Level != 1 || p.TotalXP != 0 {
		t.Errorf("fresh progress = %+v, want level 1 with no xp", p)
	}
}

func TestStudentProgress_ExistingRecord(t *testing.T) {
	env := newTestEnv(t, nil)
	env.prog.records["stu-9"] = rewards.Progress{
		StudentID: "stu-9",
		TotalXP:   230,
		Level:     3,
		Worlds:    []string{"meadow"},
	}

	_, resp := env.do(t, http.MethodGet, "/api/v1/students/stu-9/progress", nil)
	var p rewards.Progress
	if err := json.Unmarshal(resp.Data, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.TotalXP != 230 || p.Level != 3 || len(p.Worlds) != 1 {
		t.Errorf("progress = %+v", p)
	}
}

func TestStudentPerformance(t *testing.T) {
	env := newTestEnv(t, nil)
	env.events.accuracy = 0.66

	w, _ := env.do(t, http.MethodGet, "/api/v1/students/stu-1/performance", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing topic: status = %d, want 400", w.Code)
	}

	w, resp := env.do(t, http.MethodGet, "/api/v1/students/stu-1/performance?topic=fractions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var data struct {
		State struct {
			Mastery int `json:"mastery"`
		} `json:"state"`
		AllTimeAccuracy float64 `json:"allTimeAccuracy"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.State.Mastery != 50 {
		t.Errorf("fresh mastery = %d, want 50", data.State.Mastery)
	}
	if data.AllTimeAccuracy != 0.66 {
		t.Errorf("allTimeAccuracy = %v, want 0.66", data.AllTimeAccuracy)
	}
}

func TestStudentAnswers(t *testing.T) {
	env := newTestEnv(t, nil)
	env.events.answers = []store.AnswerEventData{
		{
			Sequence:   1,
			Timestamp:  time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
			StudentID:  "stu-1",
			Topic:      "fractions",
			QuestionID: "q-1",
			Correct:    true,
		},
	}

	w, _ := env.do(t, http.MethodGet, "/api/v1/students/stu-1/answers", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing topic: status = %d, want 400", w.Code)
	}

	w, resp := env.do(t, http.MethodGet, "/api/v1/students/stu-1/answers?topic=fractions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var data struct {
		Answers []store.AnswerEventData `json:"answers"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Answers) != 1 || !data.Answers[0].Correct {
		t.Errorf("answers = %+v", data.Answers)
	}
	if env.events.lastOpts.Limit != DefaultConfig().HistoryLimit {
		t.Errorf("default limit = %d, want %d", env.events.lastOpts.Limit, DefaultConfig().HistoryLimit)
	}
}

func TestStudentAnswers_LimitClamp(t *testing.T) {
	env := newTestEnv(t, nil)

	env.do(t, http.MethodGet, "/api/v1/students/stu-1/answers?topic=fractions&limit=5", nil)
	if env.events.lastOpts.Limit != 5 {
		t.Errorf("limit = %d, want 5", env.events.lastOpts.Limit)
	}

	env.do(t, http.MethodGet, "/api/v1/students/stu-1/answers?topic=fractions&limit=5000", nil)
	if env.events.lastOpts.Limit != DefaultConfig().HistoryLimit {
		t.Errorf("oversized limit = %d, want the cap %d", env.events.lastOpts.Limit, DefaultConfig().HistoryLimit)
	}

	env.do(t, http.MethodGet, "/api/v1/students/stu-1/answers?topic=fractions&limit=junk", nil)
	if env.events.lastOpts.Limit != DefaultConfig().HistoryLimit {
		t.Errorf("junk limit = %d, want the cap", env.events.lastOpts.Limit)
	}
}

func TestStudentSessions(t *testing.T) {
	env := newTestEnv(t, nil)
	env.events.sessions = []store.SessionEventData{
		{SessionID: "s-1", StudentID: "stu-1", Topic: "fractions", Action: store.ActionCompleted, XPAwarded: 53},
	}
	env.events.interventions = map[string]int{"hint": 4, "break-suggestion": 1}

	w, resp := env.do(t, http.MethodGet, "/api/v1/students/stu-1/sessions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var data struct {
		Sessions      []store.SessionEventData `json:"sessions"`
		Interventions map[string]int           `json:"interventions"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Sessions) != 1 || data.Sessions[0].XPAwarded != 53 {
		t.Errorf("sessions = %+v", data.Sessions)
	}
	if data.Interventions["hint"] != 4 {
		t.Errorf("interventions = %+v", data.Interventions)
	}
}

func TestListTopics(t *testing.T) {
	env := newTestEnv(t, nil)
	w, resp := env.do(t, http.MethodGet, "/api/v1/topics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var data struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Topics) != 1 || data.Topics[0] != "fractions" {
		t.Errorf("topics = %v", data.Topics)
	}
}

// generatedOutputJSON is a model response that survives the full
// validator chain for a medium fractions request.
func generatedOutputJSON() json.RawMessage {
	return json.RawMessage(`{
		"prompt": "What is 345 + 278?",
		"type": "numeric",
		"subtopic": "addition-practice",
		"numeric_answer": 623,
		"hints": [
			{"level": 1, "kind": "nudge", "text": "Start with the ones column."},
			{"level": 2, "kind": "guidance", "text": "Carry the extra ten into the next column."},
			{"level": 3, "kind": "reveal", "text": "345 plus 278 carries twice."}
		],
		"worked_example": {
			"intro": "Let's add 234 + 156.",
			"steps": ["Add the ones: 4 + 6 = 10.", "Carry the one and add the tens.", "Add the hundreds."]
		},
		"cognitive_load": "low",
		"estimated_time_seconds": 40,
		"points": 10
	}`)
}

func TestGenerateQuestions_CatalogOnly(t *testing.T) {
	env := newTestEnv(t, nil)

	w, resp := env.do(t, http.MethodPost, "/api/v1/questions/generate", gin.H{
		"topic": "fractions",
		"count": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !resp.Degraded {
		t.Error("catalog-only generation carries the degraded marker")
	}
	var data struct {
		Questions []question.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(data.Questions))
	}
	if data.Questions[0].Prompt == data.Questions[1].Prompt {
		t.Error("expected distinct catalog questions")
	}
}

func TestGenerateQuestions_ModelBacked(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: generatedOutputJSON()})
	env := newTestEnv(t, qgen.New(mock, qgen.DefaultConfig()))

	w, resp := env.do(t, http.MethodPost, "/api/v1/questions/generate", gin.H{
		"topic":      "fractions",
		"difficulty": "medium",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp.Degraded {
		t.Error("a healthy generator is not degraded")
	}
	var data struct {
		Questions []question.Question `json:"questions"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(data.Questions))
	}
	q := data.Questions[0]
	if q.Prompt != "What is 345 + 278?" || q.Topic != "fractions" {
		t.Errorf("question = %+v", q)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerateQuestions_FallsBackToCatalog(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: fmt.Errorf("model offline")})
	env := newTestEnv(t, qgen.New(mock, qgen.DefaultConfig()))

	w, resp := env.do(t, http.MethodPost, "/api/v1/questions/generate", gin.H{
		"topic": "fractions",
		"count": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !resp.Degraded {
		t.Error("catalog fallback carries the degraded marker")
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
}

func TestGenerateQuestions_BadRequests(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "missing topic", body: gin.H{"count": 1}},
		{name: "unknown topic", body: gin.H{"topic": "geometry"}},
		{name: "bad difficulty", body: gin.H{"topic": "fractions", "difficulty": "impossible"}},
		{name: "bad type", body: gin.H{"topic": "fractions", "types": []string{"essay"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := env.do(t, http.MethodPost, "/api/v1/questions/generate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}
}
