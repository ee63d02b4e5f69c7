package rewards

import (
	"testing"
	"time"

	"github.com/sproutedu/sprout/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickMedium() AnswerResult {
	return AnswerResult{Correct: true, Difficulty: question.DifficultyMedium, TimeSpentMs: 7_000}
}

func newCalc(t *testing.T) *Calculator {
	t.Helper()
	c, err := New(DefaultConfig(), DefaultBadges(), DefaultWorlds())
	require.NoError(t, err)
	return c
}

func TestSessionXPThreeQuickMediumAnswers(t *testing.T) {
	c := newCalc(t)

	// 10 base + 10 medium + 5 speed per answer, plus 3 consecutive for
	// the second and third.
	got := c.SessionXP([]AnswerResult{quickMedium(), quickMedium(), quickMedium()})
	assert.Equal(t, 81, got)
}

func TestSessionXPWrongAnswersEarnNothing(t *testing.T) {
	c := newCalc(t)

	wrong := AnswerResult{Correct: false, Difficulty: question.DifficultyHard, TimeSpentMs: 2_000}
	assert.Equal(t, 0, c.SessionXP([]AnswerResult{wrong, wrong}))
}

func TestSessionXPConsecutiveBreaksOnWrong(t *testing.T) {
	c := newCalc(t)

	results := []AnswerResult{
		quickMedium(),
		{Correct: false, Difficulty: question.DifficultyMedium, TimeSpentMs: 5_000},
		quickMedium(),
	}
	// Two correct answers at 25 each, no consecutive bonus anywhere.
	assert.Equal(t, 50, c.SessionXP(results))
}

func TestSessionXPSpeedBoundary(t *testing.T) {
	c := newCalc(t)

	atLimit := AnswerResult{Correct: true, Difficulty: question.DifficultyBeginner, TimeSpentMs: 10_000}
	underLimit := AnswerResult{Correct: true, Difficulty: question.DifficultyBeginner, TimeSpentMs: 9_999}

	assert.Equal(t, 10, c.SessionXP([]AnswerResult{atLimit}))
	assert.Equal(t, 15, c.SessionXP([]AnswerResult{underLimit}))
}

func TestSessionXPDifficultyBonuses(t *testing.T) {
	c := newCalc(t)

	tests := []struct {
		difficulty question.Difficulty
		want       int
	}{
		{question.DifficultyBeginner, 10},
		{question.DifficultyEasy, 15},
		{question.DifficultyMedium, 20},
		{question.DifficultyHard, 30},
		{question.DifficultyAdvanced, 40},
	}

	for _, tc := range tests {
		r := AnswerResult{Correct: true, Difficulty: tc.difficulty, TimeSpentMs: 20_000}
		assert.Equal(t, tc.want, c.SessionXP([]AnswerResult{r}), "difficulty %s", tc.difficulty)
	}
}

func TestLevel(t *testing.T) {
	c := newCalc(t)

	assert.Equal(t, 1, c.Level(0))
	assert.Equal(t, 1, c.Level(99))
	assert.Equal(t, 2, c.Level(100))
	assert.Equal(t, 3, c.Level(250))
}

func TestApplyFirstSession(t *testing.T) {
	c := newCalc(t)
	now := time.Unix(1_700_000_000, 0)

	p, summary := c.Apply(NewProgress("ada"), []AnswerResult{quickMedium(), quickMedium(), quickMedium()}, now)

	assert.Equal(t, 81, summary.XP)
	assert.Equal(t, 1, summary.LevelAfter)
	assert.False(t, summary.LeveledUp)

	// First Steps fires on the first completed session; its bonus is
	// reported apart from answer XP.
	require.Len(t, summary.NewBadges, 1)
	assert.Equal(t, "first-steps", summary.NewBadges[0].ID)
	assert.Equal(t, 10, summary.BadgeXP)
	assert.Equal(t, 91, p.TotalXP)
	assert.Equal(t, 1, p.Level)

	assert.Equal(t, 3, p.Stats.BestStreak)
	assert.Equal(t, 0, p.Stats.PerfectSessions, "three answers are below the perfect-session floor")
	assert.Equal(t, []string{"meadow"}, p.Worlds)
}

func TestApplyBadgesAreIdempotent(t *testing.T) {
	c := newCalc(t)
	now := time.Unix(1_700_000_000, 0)

	p, _ := c.Apply(NewProgress("ada"), []AnswerResult{quickMedium()}, now)
	p, summary := c.Apply(p, []AnswerResult{quickMedium()}, now.Add(time.Hour))

	for _, b := range summary.NewBadges {
		assert.NotEqual(t, "first-steps", b.ID, "badge awarded twice")
	}
	count := 0
	for _, a := range p.Badges {
		if a.BadgeID == "first-steps" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestApplyUnlocksWorldsOnce(t *testing.T) {
	c := newCalc(t)
	now := time.Unix(1_700_000_000, 0)

	p := NewProgress("ada")
	p.TotalXP = 140
	p.Worlds = []string{"meadow"}

	p, summary := c.Apply(p, []AnswerResult{quickMedium()}, now)

	require.Len(t, summary.UnlockedWorlds, 1)
	assert.Equal(t, "riverlands", summary.UnlockedWorlds[0].ID)

	p, summary = c.Apply(p, []AnswerResult{quickMedium()}, now.Add(time.Hour))
	assert.Empty(t, summary.UnlockedWorlds)
	assert.Equal(t, []string{"meadow", "riverlands"}, p.Worlds)
}

func TestApplyPerfectSessionNeedsLength(t *testing.T) {
	c := newCalc(t)
	now := time.Unix(1_700_000_000, 0)

	five := []AnswerResult{quickMedium(), quickMedium(), quickMedium(), quickMedium(), quickMedium()}
	p, summary := c.Apply(NewProgress("ada"), five, now)

	assert.Equal(t, 1, p.Stats.PerfectSessions)
	ids := make([]string, 0, len(summary.NewBadges))
	for _, b := range summary.NewBadges {
		ids = append(ids, b.ID)
	}
	assert.Contains(t, ids, "flawless")
	assert.Contains(t, ids, "on-a-roll")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	c := newCalc(t)
	now := time.Unix(1_700_000_000, 0)

	p, _ := c.Apply(NewProgress("ada"), []AnswerResult{quickMedium()}, now)
	badgesBefore := len(p.Badges)
	xpBefore := p.TotalXP

	_, _ = c.Apply(p, []AnswerResult{quickMedium(), quickMedium()}, now.Add(time.Hour))

	assert.Equal(t, badgesBefore, len(p.Badges))
	assert.Equal(t, xpBefore, p.TotalXP)
}

func TestApplyDeterministic(t *testing.T) {
	c := newCalc(t)
	now := time.Unix(1_700_000_000, 0)
	results := []AnswerResult{quickMedium(), {Correct: false}, quickMedium()}

	p1, s1 := c.Apply(NewProgress("ada"), results, now)
	p2, s2 := c.Apply(NewProgress("ada"), results, now)

	assert.Equal(t, p1.TotalXP, p2.TotalXP)
	assert.Equal(t, s1.XP, s2.XP)
	assert.Equal(t, len(s1.NewBadges), len(s2.NewBadges))
}

func TestNewRejectsBadCatalogs(t *testing.T) {
	cfg := DefaultConfig()
	ok := func(Progress) bool { return false }

	_, err := New(cfg, []Badge{
		{ID: "dup", Name: "A", Rarity: RarityCommon, Criteria: ok},
		{ID: "dup", Name: "B", Rarity: RarityCommon, Criteria: ok},
	}, DefaultWorlds())
	assert.Error(t, err)

	_, err = New(cfg, []Badge{{ID: "x", Name: "X", Rarity: RarityCommon}}, DefaultWorlds())
	assert.Error(t, err, "nil criteria must be rejected")

	_, err = New(cfg, DefaultBadges(), []World{
		{ID: "a", Name: "A", RequiredXP: 100},
		{ID: "b", Name: "B", RequiredXP: 100},
	})
	assert.Error(t, err, "world thresholds must rise")
}
