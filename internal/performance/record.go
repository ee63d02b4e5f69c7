package performance

// RecordAnswer folds one observation into the state and returns the
// updated copy. The input state is never modified, so callers can keep
// the old value for comparison.
func RecordAnswer(s State, obs Observation, cfg Config) State {
	if cfg.WindowSize <= 0 {
		cfg = DefaultConfig()
	}

	next := s
	next.Recent = append(append([]Observation(nil), s.Recent...), obs)
	if len(next.Recent) > cfg.WindowSize {
		next.Recent = next.Recent[len(next.Recent)-cfg.WindowSize:]
	}

	next.TotalAnswered++
	if obs.Correct {
		next.TotalCorrect++
		next.Streak++
		if next.Streak > next.LongestStreak {
			next.LongestStreak = next.Streak
		}
	} else {
		next.Streak = 0
	}

	delta := cfg.IncorrectDelta
	if obs.Correct {
		if obs.HintsUsed > 0 {
			delta = cfg.CorrectWithHintsDelta
		} else {
			delta = cfg.CorrectNoHintsDelta
		}
	}
	next.Mastery = clamp(next.Mastery+delta, 0, 100)

	next.Struggling, next.Strengths = retag(next.Recent, obs, next.Struggling, next.Strengths, cfg)
	next.UpdatedAt = obs.Timestamp
	return next
}

// retag reclassifies the tags touched by the new observation against
// the window. Tags outside the struggle and strength bands are cleared
// from both lists.
func retag(window []Observation, obs Observation, struggling, strengths []string, cfg Config) ([]string, []string) {
	for _, tag := range obsTags(obs) {
		n, correct := 0, 0
		for _, o := range window {
			if !hasTag(o, tag) {
				continue
			}
			n++
			if o.Correct {
				correct++
			}
		}
		if n < cfg.MinSample {
			continue
		}
		acc := float64(correct) / float64(n)
		switch {
		case acc < cfg.StruggleBelow:
			struggling = addTag(struggling, tag)
			strengths = removeTag(strengths, tag)
		case acc >= cfg.StrengthAtOrAbove:
			strengths = addTag(strengths, tag)
			struggling = removeTag(struggling, tag)
		default:
			struggling = removeTag(struggling, tag)
			strengths = removeTag(strengths, tag)
		}
	}
	return struggling, strengths
}

func obsTags(o Observation) []string {
	tags := []string{o.Topic}
	if o.Subtopic != "" {
		tags = append(tags, o.Topic+"/"+o.Subtopic)
	}
	return tags
}

func hasTag(o Observation, tag string) bool {
	if o.Topic == tag {
		return true
	}
	return o.Subtopic != "" && o.Topic+"/"+o.Subtopic == tag
}

func addTag(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(append([]string(nil), tags...), tag)
}

func removeTag(tags []string, tag string) []string {
	var out []string
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
