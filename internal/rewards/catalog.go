package rewards

// DefaultBadges is the built-in badge catalog.
func DefaultBadges() []Badge {
	return []Badge{
		{
			ID:          "first-steps",
			Name:        "First Steps",
			Description: "Finish your first practice session.",
			Rarity:      RarityCommon,
			XPBonus:     10,
			Criteria:    func(p Progress) bool { return p.Stats.SessionsCompleted >= 1 },
		},
		{
			ID:          "sharp-ten",
			Name:        "Sharp Ten",
			Description: "Answer 10 questions correctly.",
			Rarity:      RarityCommon,
			XPBonus:     15,
			Criteria:    func(p Progress) bool { return p.Stats.CorrectAnswers >= 10 },
		},
		{
			ID:          "no-hints-needed",
			Name:        "No Hints Needed",
			Description: "Answer 25 questions correctly without any hints.",
			Rarity:      RarityRare,
			XPBonus:     25,
			Criteria:    func(p Progress) bool { return p.Stats.HintFreeCorrect >= 25 },
		},
		{
			ID:          "on-a-roll",
			Name:        "On a Roll",
			Description: "Get 5 answers right in a row.",
			Rarity:      RarityRare,
			XPBonus:     20,
			Criteria:    func(p Progress) bool { return p.Stats.BestStreak >= 5 },
		},
		{
			ID:          "unstoppable",
			Name:        "Unstoppable",
			Description: "Get 10 answers right in a row.",
			Rarity:      RarityEpic,
			XPBonus:     40,
			Criteria:    func(p Progress) bool { return p.Stats.BestStreak >= 10 },
		},
		{
			ID:          "flawless",
			Name:        "Flawless",
			Description: "Finish a full session with every answer right.",
			Rarity:      RarityEpic,
			XPBonus:     30,
			Criteria:    func(p Progress) bool { return p.Stats.PerfectSessions >= 1 },
		},
		{
			ID:          "centurion",
			Name:        "Centurion",
			Description: "Answer 100 questions.",
			Rarity:      RarityEpic,
			XPBonus:     50,
			Criteria:    func(p Progress) bool { return p.Stats.QuestionsAnswered >= 100 },
		},
		{
			ID:          "rising-star",
			Name:        "Rising Star",
			Description: "Reach 500 XP.",
			Rarity:      RarityLegendary,
			XPBonus:     75,
			Criteria:    func(p Progress) bool { return p.TotalXP >= 500 },
		},
	}
}

// DefaultWorlds is the built-in world map, in unlock order.
func DefaultWorlds() []World {
	return []World{
		{ID: "meadow", Name: "Sunny Meadow", RequiredXP: 0},
		{ID: "riverlands", Name: "Riverlands", RequiredXP: 150},
		{ID: "cloud-peaks", Name: "Cloud Peaks", RequiredXP: 400},
		{ID: "star-harbor", Name: "Star Harbor", RequiredXP: 900},
	}
}
