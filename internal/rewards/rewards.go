// Package rewards turns completed practice into XP, levels, badges,
// and world unlocks. Everything is deterministic: the same answers
// against the same cumulative record always produce the same awards,
// and wall-clock time is used only to stamp when a badge was earned.
package rewards

import (
	"time"

	"github.com/sproutedu/sprout/internal/question"
)

// Rarity grades how special a badge is.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// AnswerResult is the reward-relevant slice of one answered question.
type AnswerResult struct {
	Correct     bool                `json:"correct"`
	Difficulty  question.Difficulty `json:"difficulty"`
	TimeSpentMs int64               `json:"timeSpentMs"`
	HintsUsed   int                 `json:"hintsUsed"`
}

// Badge is a catalog entry. Criteria is a pure filter over the
// cumulative record; it must not depend on anything else.
type Badge struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Rarity      Rarity              `json:"rarity"`
	XPBonus     int                 `json:"xpBonus"`
	Criteria    func(Progress) bool `json:"-"`
}

// World is a themed area that unlocks at a fixed XP threshold.
type World struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RequiredXP int    `json:"requiredXp"`
}

// Awarded records one earned badge.
type Awarded struct {
	BadgeID  string    `json:"badgeId"`
	EarnedAt time.Time `json:"earnedAt"`
}

// Stats accumulates the counters badge criteria read.
type Stats struct {
	SessionsCompleted int `json:"sessionsCompleted"`
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	HintFreeCorrect   int `json:"hintFreeCorrect"`
	PerfectSessions   int `json:"perfectSessions"`
	BestStreak        int `json:"bestStreak"`
}

// Progress is the cumulative reward record for one student.
type Progress struct {
	StudentID string    `json:"studentId"`
	TotalXP   int       `json:"totalXp"`
	Level     int       `json:"level"`
	Badges    []Awarded `json:"badges,omitempty"`
	Worlds    []string  `json:"worlds,omitempty"`
	Stats     Stats     `json:"stats"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProgress returns an empty record at level 1.
func NewProgress(studentID string) Progress {
	return Progress{StudentID: studentID, Level: 1}
}

// Holds reports whether the badge has already been earned.
func (p *Progress) Holds(badgeID string) bool {
	for _, a := range p.Badges {
		if a.BadgeID == badgeID {
			return true
		}
	}
	return false
}

// Unlocked reports whether the world is already open.
func (p *Progress) Unlocked(worldID string) bool {
	for _, id := range p.Worlds {
		if id == worldID {
			return true
		}
	}
	return false
}

// Summary describes what one completed session earned. XP counts
// answers only; badge bonuses are reported separately so session
// scoring stays reproducible.
type Summary struct {
	XP             int       `json:"xp"`
	BadgeXP        int       `json:"badgeXp"`
	NewBadges      []Badge   `json:"newBadges,omitempty"`
	UnlockedWorlds []World   `json:"unlockedWorlds,omitempty"`
	LevelBefore    int       `json:"levelBefore"`
	LevelAfter     int       `json:"levelAfter"`
	LeveledUp      bool      `json:"leveledUp"`
	EarnedAt       time.Time `json:"earnedAt"`
}
