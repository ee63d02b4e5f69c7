package rewards

import "github.com/sproutedu/sprout/internal/question"

// Config tunes XP scoring. Beginner questions carry no difficulty
// bonus.
type Config struct {
	BaseCorrectXP      int
	EasyBonusXP        int
	MediumBonusXP      int
	HardBonusXP        int
	AdvancedBonusXP    int
	SpeedBonusXP       int
	FastAnswerMs       int64
	ConsecutiveBonusXP int
	XPPerLevel         int

	// MinPerfectSession is how many answers an all-correct session
	// needs before it counts as perfect.
	MinPerfectSession int
}

// DefaultConfig returns the standard scoring.
func DefaultConfig() Config {
	return Config{
		BaseCorrectXP:      10,
		EasyBonusXP:        5,
		MediumBonusXP:      10,
		HardBonusXP:        20,
		AdvancedBonusXP:    30,
		SpeedBonusXP:       5,
		FastAnswerMs:       10_000,
		ConsecutiveBonusXP: 3,
		XPPerLevel:         100,
		MinPerfectSession:  5,
	}
}

func (c Config) bonusFor(d question.Difficulty) int {
	switch d {
	case question.DifficultyEasy:
		return c.EasyBonusXP
	case question.DifficultyMedium:
		return c.MediumBonusXP
	case question.DifficultyHard:
		return c.HardBonusXP
	case question.DifficultyAdvanced:
		return c.AdvancedBonusXP
	}
	return 0
}
