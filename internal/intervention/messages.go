package intervention

// DefaultMessages maps decision message keys to English lines for
// surfaces that have no localization layer of their own.
var DefaultMessages = map[string]string{
	"encouragement.keep-trying":  "So close! Take another look and trust what you know.",
	"encouragement.brave-try":    "Tricky one! Every try teaches your brain something new.",
	"hint.next":                  "Here's a hint to get you over the bump.",
	"worked-example.walkthrough": "Let's walk through one together, step by step.",
	"break.recharge":             "Great effort! Brains grow during rest. How about a quick break?",
	"break.cool-down":            "Time for a breather. Stretch, breathe, and come back fresh.",
	"topic-switch.fresh-start":   "Let's try something different for a bit and come back to this later.",
	"celebration.hot-streak":     "Amazing streak! You're on fire!",
	"celebration.warming-up":     "Two in a row, keep it rolling!",
	"celebration.nice-work":      "Nice work!",
}

// MessageFor resolves a decision's message key, falling back to the
// key itself when no line exists.
func MessageFor(key string) string {
	if msg, ok := DefaultMessages[key]; ok {
		return msg
	}
	return key
}
