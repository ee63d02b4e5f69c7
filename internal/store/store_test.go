package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sproutedu/sprout/internal/performance"
	"github.com/sproutedu/sprout/internal/rewards"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, KindPerformance, "kid-1/fractions")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, &Snapshot{
		Kind: KindPerformance,
		Key:  "kid-1/fractions",
		Data: []byte(`{"mastery":52}`),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, KindPerformance, "kid-1/fractions")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence == 0 {
		t.Error("snapshot was not stamped with a sequence")
	}

	// Other keys stay empty.
	other, err := repo.Latest(ctx, KindPerformance, "kid-2/fractions")
	if err != nil {
		t.Fatalf("latest (other key): %v", err)
	}
	if other != nil {
		t.Fatal("snapshot leaked across keys")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind: KindProgress,
			Key:  "kid-1",
			Data: fmt.Appendf(nil, `{"totalXp":%d}`, i*10),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, KindProgress, "kid-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if string(snap.Data) != `{"totalXp":30}` {
		t.Errorf("latest data = %s, want the newest row", snap.Data)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind: KindPerformance,
			Key:  "kid-1/fractions",
			Data: []byte(`{"mastery":50}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// A second key that must survive pruning of the first.
	err := repo.Save(ctx, &Snapshot{
		Kind: KindPerformance,
		Key:  "kid-2/fractions",
		Data: []byte(`{"mastery":60}`),
	})
	if err != nil {
		t.Fatalf("save other key: %v", err)
	}

	if err := repo.Prune(ctx, KindPerformance, "kid-1/fractions", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 { // 5 kept + 1 on the other key
		t.Errorf("remaining snapshots = %d, want 6", count)
	}

	snap, err := repo.Latest(ctx, KindPerformance, "kid-2/fractions")
	if err != nil {
		t.Fatalf("latest (other key): %v", err)
	}
	if snap == nil {
		t.Fatal("prune deleted the other key's snapshot")
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind: KindProgress,
			Key:  "kid-1",
			Data: []byte(`{}`),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, KindProgress, "kid-1", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestPerformanceRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PerformanceRepo()
	ctx := context.Background()

	got, err := repo.LoadPerformance(ctx, "kid-1", "fractions")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil state for a fresh student")
	}

	state := performance.New("kid-1", "fractions")
	state.Streak = 2
	state.Mastery = 54
	state.Recent = []performance.Observation{
		{QuestionID: "q1", Topic: "fractions", Correct: true, TimeSpentMs: 7000, Timestamp: time.Now().UTC()},
	}
	if err := repo.SavePerformance(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.LoadPerformance(ctx, "kid-1", "fractions")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored state")
	}
	if got.Streak != 2 || got.Mastery != 54 || len(got.Recent) != 1 {
		t.Errorf("state = streak %d mastery %d window %d, want 2 54 1",
			got.Streak, got.Mastery, len(got.Recent))
	}
}

func TestPerformanceRepoKeepsRetentionBound(t *testing.T) {
	s := openTestStore(t)
	repo := s.PerformanceRepo()
	repo.Keep = 3
	ctx := context.Background()

	state := performance.New("kid-1", "fractions")
	for i := 0; i < 6; i++ {
		state.Mastery = 50 + i
		if err := repo.SavePerformance(ctx, state); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("retained snapshots = %d, want 3", count)
	}

	got, err := repo.LoadPerformance(ctx, "kid-1", "fractions")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Mastery != 55 {
		t.Errorf("mastery = %d, want newest value 55", got.Mastery)
	}
}

func TestProgressRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p := rewards.NewProgress("kid-1")
	p.TotalXP = 91
	p.Badges = []rewards.Awarded{{BadgeID: "first-steps", EarnedAt: time.Now().UTC()}}
	p.Worlds = []string{"meadow"}
	if err := repo.SaveProgress(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadProgress(ctx, "kid-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored progress")
	}
	if got.TotalXP != 91 || len(got.Badges) != 1 || got.Badges[0].BadgeID != "first-steps" {
		t.Errorf("progress = xp %d badges %v", got.TotalXP, got.Badges)
	}
}

func TestEventAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "s1",
		StudentID:      "kid-1",
		Topic:          "fractions",
		Action:         ActionStarted,
		Difficulty:     "medium",
		QuestionsTotal: 3,
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	answers := []AnswerEventData{
		{SessionID: "s1", StudentID: "kid-1", Topic: "fractions", QuestionID: "q1", QuestionType: "multiple-choice", Difficulty: "medium", Value: "2/4", Correct: true, TimeMs: 7000, Attempts: 1, StreakAfter: 1, MasteryAfter: 52, DifficultyAfter: "medium", DifficultyReason: "steady state"},
		{SessionID: "s1", StudentID: "kid-1", Topic: "fractions", QuestionID: "q2", QuestionType: "multiple-choice", Difficulty: "medium", Value: "1/3", Correct: false, TimeMs: 9000, Attempts: 3, StreakAfter: 0, MasteryAfter: 51, DifficultyAfter: "medium", DifficultyReason: "steady state"},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	history, err := repo.AnswerHistory(ctx, "kid-1", "fractions", QueryOpts{})
	if err != nil {
		t.Fatalf("answer history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].QuestionID != "q1" || history[1].QuestionID != "q2" {
		t.Errorf("history out of order: %q then %q", history[0].QuestionID, history[1].QuestionID)
	}
	if history[0].Sequence >= history[1].Sequence {
		t.Errorf("sequences not increasing: %d then %d", history[0].Sequence, history[1].Sequence)
	}

	limited, err := repo.AnswerHistory(ctx, "kid-1", "fractions", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited history: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited history length = %d, want 1", len(limited))
	}
	if limited[0].QuestionID != "q2" {
		t.Errorf("limit kept %q, want the most recent answer q2", limited[0].QuestionID)
	}

	after, err := repo.AnswerHistory(ctx, "kid-1", "fractions", QueryOpts{After: history[0].Sequence})
	if err != nil {
		t.Fatalf("after history: %v", err)
	}
	if len(after) != 1 || after[0].QuestionID != "q2" {
		t.Errorf("after filter returned %+v, want just q2", after)
	}

	acc, err := repo.TopicAccuracy(ctx, "kid-1", "fractions")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", acc)
	}

	sessions, err := repo.SessionHistory(ctx, "kid-1", QueryOpts{})
	if err != nil {
		t.Fatalf("session history: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Action != ActionStarted {
		t.Errorf("session history = %+v, want one started row", sessions)
	}
}

func TestInterventionCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	kinds := []string{"encouragement", "hint", "encouragement"}
	for i, k := range kinds {
		err := repo.AppendInterventionEvent(ctx, InterventionEventData{
			SessionID:  "s1",
			StudentID:  "kid-1",
			Topic:      "fractions",
			Kind:       k,
			Priority:   "low",
			MessageKey: "encouragement.keep-trying",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	counts, err := repo.InterventionCounts(ctx, "kid-1")
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts["encouragement"] != 2 || counts["hint"] != 1 {
		t.Errorf("counts = %v, want encouragement 2 hint 1", counts)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "question-gen",
		InputTokens:  812,
		OutputTokens: 430,
		LatencyMs:    1200,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm request rows = %d, want 1", count)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rows := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "question-gen", InputTokens: 500, OutputTokens: 200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "question-gen", InputTokens: 300, OutputTokens: 100, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 400, OutputTokens: 150, Success: true},
	}
	for _, r := range rows {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(usage))
	}

	claude := usage[0]
	if claude.Provider != "anthropic" || claude.Model != "claude-haiku-4-5-20251001" {
		t.Fatalf("first row = %s/%s, want anthropic claude row", claude.Provider, claude.Model)
	}
	if claude.Requests != 2 || claude.Failures != 1 {
		t.Errorf("claude requests/failures = %d/%d, want 2/1", claude.Requests, claude.Failures)
	}
	if claude.InputTokens != 800 || claude.OutputTokens != 300 {
		t.Errorf("claude tokens = %d in / %d out, want 800/300", claude.InputTokens, claude.OutputTokens)
	}

	gpt := usage[1]
	if gpt.Requests != 1 || gpt.Failures != 0 {
		t.Errorf("gpt requests/failures = %d/%d, want 1/0", gpt.Requests, gpt.Failures)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "session_events", "answer_events", "intervention_events", "reward_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
