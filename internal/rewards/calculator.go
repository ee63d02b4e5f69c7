package rewards

import (
	"fmt"
	"time"
)

// Calculator scores sessions against a fixed badge and world catalog.
type Calculator struct {
	cfg    Config
	badges []Badge
	worlds []World
}

// New validates the catalog and returns a calculator. World thresholds
// must rise strictly so unlock order is well defined.
func New(cfg Config, badges []Badge, worlds []World) (*Calculator, error) {
	seen := make(map[string]bool, len(badges))
	for _, b := range badges {
		if b.ID == "" {
			return nil, fmt.Errorf("badge with empty id")
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Criteria == nil {
			return nil, fmt.Errorf("badge %q has no criteria", b.ID)
		}
		if !b.Rarity.Valid() {
			return nil, fmt.Errorf("badge %q has unknown rarity %q", b.ID, b.Rarity)
		}
		if b.XPBonus < 0 {
			return nil, fmt.Errorf("badge %q has negative xp bonus", b.ID)
		}
	}

	worldIDs := make(map[string]bool, len(worlds))
	for i, w := range worlds {
		if w.ID == "" {
			return nil, fmt.Errorf("world with empty id")
		}
		if worldIDs[w.ID] {
			return nil, fmt.Errorf("duplicate world id %q", w.ID)
		}
		worldIDs[w.ID] = true
		if i > 0 && w.RequiredXP <= worlds[i-1].RequiredXP {
			return nil, fmt.Errorf("world %q threshold %d does not rise past %q",
				w.ID, w.RequiredXP, worlds[i-1].ID)
		}
	}

	return &Calculator{cfg: cfg, badges: badges, worlds: worlds}, nil
}

// SessionXP scores a batch of answers: base XP per correct answer, a
// difficulty bonus, a speed bonus for quick correct answers, and a
// consecutive bonus whenever the previous answer in the batch was also
// correct. Wrong answers earn nothing.
func (c *Calculator) SessionXP(results []AnswerResult) int {
	xp := 0
	for i, r := range results {
		if !r.Correct {
			continue
		}
		xp += c.cfg.BaseCorrectXP
		xp += c.cfg.bonusFor(r.Difficulty)
		if r.TimeSpentMs < c.cfg.FastAnswerMs {
			xp += c.cfg.SpeedBonusXP
		}
		if i > 0 && results[i-1].Correct {
			xp += c.cfg.ConsecutiveBonusXP
		}
	}
	return xp
}

// Level converts total XP into a level, starting at 1.
func (c *Calculator) Level(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/c.cfg.XPPerLevel + 1
}

// Worlds returns the full catalog in unlock order.
func (c *Calculator) Worlds() []World {
	return c.worlds
}

// Apply folds one completed session into the cumulative record and
// reports what it earned. The input record is never modified. Badges
// already held are never re-awarded, so applying is idempotent with
// respect to the badge list.
func (c *Calculator) Apply(p Progress, results []AnswerResult, now time.Time) (Progress, Summary) {
	next := p
	next.Badges = append([]Awarded(nil), p.Badges...)
	next.Worlds = append([]string(nil), p.Worlds...)

	levelBefore := c.Level(p.TotalXP)
	xp := c.SessionXP(results)
	next.TotalXP += xp

	correct, hintFree := 0, 0
	for _, r := range results {
		if r.Correct {
			correct++
			if r.HintsUsed == 0 {
				hintFree++
			}
		}
	}
	next.Stats.SessionsCompleted++
	next.Stats.QuestionsAnswered += len(results)
	next.Stats.CorrectAnswers += correct
	next.Stats.HintFreeCorrect += hintFree
	if run := bestRun(results); run > next.Stats.BestStreak {
		next.Stats.BestStreak = run
	}
	if len(results) >= c.cfg.MinPerfectSession && correct == len(results) {
		next.Stats.PerfectSessions++
	}

	summary := Summary{XP: xp, LevelBefore: levelBefore, EarnedAt: now}
	for _, b := range c.badges {
		if next.Holds(b.ID) || !b.Criteria(next) {
			continue
		}
		next.Badges = append(next.Badges, Awarded{BadgeID: b.ID, EarnedAt: now})
		next.TotalXP += b.XPBonus
		summary.BadgeXP += b.XPBonus
		summary.NewBadges = append(summary.NewBadges, b)
	}

	for _, w := range c.worlds {
		if next.TotalXP >= w.RequiredXP && !next.Unlocked(w.ID) {
			next.Worlds = append(next.Worlds, w.ID)
			summary.UnlockedWorlds = append(summary.UnlockedWorlds, w)
		}
	}

	next.Level = c.Level(next.TotalXP)
	next.UpdatedAt = now

	summary.LevelAfter = next.Level
	summary.LeveledUp = next.Level > levelBefore
	return next, summary
}

// bestRun is the longest run of consecutive correct answers in the
// batch.
func bestRun(results []AnswerResult) int {
	best, run := 0, 0
	for _, r := range results {
		if !r.Correct {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}
