package question

import (
	"math"
	"strconv"
	"strings"
)

// CheckAnswer compares a learner's submission against the question's
// content. It is total: malformed submissions are simply wrong, never an
// error.
//
// Normalization rules:
//   - Whitespace is trimmed; text comparison is case-insensitive.
//   - Numeric values accept integers, decimals, and fractions; "2/4"
//     matches 0.5 and trailing zeros are ignored ("3.50" matches "3.5").
//   - Choice-based types accept either 1-based indices or choice text.
//   - Set- and sequence-based types use comma-separated entries;
//     matching uses "left:right" index pairs.
func CheckAnswer(q *Question, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || q == nil || q.Content == nil {
		return false
	}

	switch c := q.Content.(type) {
	case MultipleChoice:
		return checkChoice(value, c.Choices, c.CorrectIndex)
	case MultipleSelect:
		return checkMultiSelect(value, c)
	case FillBlank:
		return matchAccepted(value, c.Accepted)
	case TrueFalse:
		return checkTrueFalse(value, c)
	case Numeric:
		return checkNumeric(value, c)
	case ShortAnswer:
		return matchAccepted(value, c.Accepted)
	case OpenResponse:
		return checkOpenResponse(value, c)
	case Matching:
		return checkMatching(value, c)
	case Ordering:
		return checkOrdering(value, c)
	default:
		return false
	}
}

// checkChoice accepts a 1-based index or the choice text itself.
func checkChoice(value string, choices []string, correct int) bool {
	idx, ok := parseChoice(value, choices)
	return ok && idx == correct
}

// parseChoice resolves a submission to a 0-based choice index, trying the
// 1-based numeric form first and the choice text second.
func parseChoice(value string, choices []string) (int, bool) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(choices) {
		return n - 1, true
	}
	for i, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c), value) {
			return i, true
		}
	}
	return 0, false
}

func checkMultiSelect(value string, c MultipleSelect) bool {
	parts := splitList(value)
	if len(parts) != len(c.CorrectIndices) {
		return false
	}
	want := make(map[int]bool, len(c.CorrectIndices))
	for _, idx := range c.CorrectIndices {
		want[idx] = true
	}
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		idx, ok := parseChoice(p, c.Choices)
		if !ok || !want[idx] || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

func checkTrueFalse(value string, c TrueFalse) bool {
	token := value
	rest := ""
	if i := strings.IndexAny(value, " \t"); i >= 0 {
		token, rest = value[:i], value[i+1:]
	}
	var got bool
	switch strings.ToLower(token) {
	case "true", "t":
		got = true
	case "false", "f":
		got = false
	default:
		return false
	}
	if got != c.Answer {
		return false
	}
	if c.RequireExplanation && strings.TrimSpace(rest) == "" {
		return false
	}
	return true
}

func checkNumeric(value string, c Numeric) bool {
	if c.Unit != "" {
		value = strings.TrimSpace(strings.TrimSuffix(value, c.Unit))
	}
	v, ok := parseNumber(value)
	if !ok {
		return false
	}
	return math.Abs(v-c.Answer) <= c.Tolerance
}

func checkOpenResponse(value string, c OpenResponse) bool {
	words := strings.Fields(value)
	if len(words) == 0 {
		return false
	}
	return c.MinWords <= 0 || len(words) >= c.MinWords
}

// checkMatching expects "left:right" index pairs, e.g. "0:2,1:0,2:1".
// Pairs may arrive in any order but every left item must appear exactly
// once.
func checkMatching(value string, c Matching) bool {
	parts := splitList(value)
	if len(parts) != len(c.Left) {
		return false
	}
	seen := make(map[int]bool, len(parts))
	for _, p := range parts {
		l, r, ok := strings.Cut(p, ":")
		if !ok {
			return false
		}
		li, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil || li < 0 || li >= len(c.Left) || seen[li] {
			return false
		}
		ri, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil || c.Pairs[li] != ri {
			return false
		}
		seen[li] = true
	}
	return true
}

// checkOrdering expects item indices in submitted order, e.g. "2,0,1".
func checkOrdering(value string, c Ordering) bool {
	parts := splitList(value)
	if len(parts) != len(c.Correct) {
		return false
	}
	for k, p := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || idx != c.Correct[k] {
			return false
		}
	}
	return true
}

// matchAccepted reports whether the submission matches any accepted
// answer. Numeric accepted answers compare numerically so "0.5" matches
// an accepted "1/2".
func matchAccepted(value string, accepted []string) bool {
	for _, a := range accepted {
		if strings.EqualFold(strings.TrimSpace(a), value) {
			return true
		}
		av, aok := parseNumber(a)
		vv, vok := parseNumber(value)
		if aok && vok && av == vv {
			return true
		}
	}
	return false
}

func splitList(value string) []string {
	raw := strings.Split(value, ",")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// parseNumber parses integers, decimals, and fractions into a float64.
// Fractions reduce before conversion so "2/4" and "1/2" are equal.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, "/") {
		num, den, ok := parseFraction(s)
		if !ok || den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFraction parses "a/b" into a reduced numerator and denominator
// with the sign carried on the numerator.
func parseFraction(s string) (int64, int64, bool) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil || den == 0 {
		return 0, 0, false
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return num / g, den / g, true
}

// gcd returns the greatest common divisor of two non-negative values.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
