package qgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/sproutedu/sprout/internal/question"
)

// ArithmeticValidator independently recomputes numeric answers from the
// prompt text. Covers plain arithmetic and fraction operations; prompts
// it cannot parse (word problems, comparisons) pass through silently.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

func (v *ArithmeticValidator) Validate(q *question.Question, _ GenerateInput) *ValidationError {
	num, ok := q.Content.(question.Numeric)
	if !ok {
		return nil
	}

	computed, err := computeFromPrompt(q.Prompt)
	if err != nil {
		// Not an extractable expression. Fine, pass through.
		return nil
	}

	tol := num.Tolerance
	if tol <= 0 {
		tol = 1e-9
	}
	if math.Abs(computed-num.Answer) > tol {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("prompt computes to %v but answer claims %v", computed, num.Answer),
			Retryable: true,
		}
	}
	return nil
}

// Patterns for extracting arithmetic expressions from prompt text.
var (
	// Fraction arithmetic: "a/b + c/d", "a/b - c/d", "a/b * c/d", "a/b ÷ c/d"
	fractionArithRe = regexp.MustCompile(`(-?\d+)\s*/\s*(\d+)\s*([+\-*×÷])\s*(-?\d+)\s*/\s*(\d+)`)

	// Integer/decimal arithmetic with +, -, *, ×
	intArithRe = regexp.MustCompile(`(?:^|[^\d/])(-?\d+(?:\.\d+)?)\s*([+\-*×])\s*(-?\d+(?:\.\d+)?)(?:[^\d/]|$)`)

	// Division requires spaces around the operator to distinguish it
	// from fraction notation (144 / 12 vs 3/4).
	intDivRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s+[/÷]\s+(-?\d+(?:\.\d+)?)`)
)

// computeFromPrompt extracts the first arithmetic expression in the
// prompt and evaluates it. Returns an error if nothing computable is
// found.
func computeFromPrompt(text string) (float64, error) {
	if m := fractionArithRe.FindStringSubmatch(text); m != nil {
		return computeFractionOp(m)
	}
	if m := intArithRe.FindStringSubmatch(text); m != nil {
		return computeBinaryOp(m[1], normalizeOp(m[2]), m[3])
	}
	if m := intDivRe.FindStringSubmatch(text); m != nil {
		return computeBinaryOp(m[1], "/", m[2])
	}
	return 0, fmt.Errorf("no arithmetic expression found")
}

func computeFractionOp(m []string) (float64, error) {
	aN, _ := strconv.ParseInt(m[1], 10, 64)
	aD, _ := strconv.ParseInt(m[2], 10, 64)
	op := normalizeOp(m[3])
	bN, _ := strconv.ParseInt(m[4], 10, 64)
	bD, _ := strconv.ParseInt(m[5], 10, 64)

	if aD == 0 || bD == 0 {
		return 0, fmt.Errorf("zero denominator")
	}

	var rN, rD int64
	switch op {
	case "+":
		rN = aN*bD + bN*aD
		rD = aD * bD
	case "-":
		rN = aN*bD - bN*aD
		rD = aD * bD
	case "*":
		rN = aN * bN
		rD = aD * bD
	case "/":
		if bN == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		rN = aN * bD
		rD = aD * bN
	default:
		return 0, fmt.Errorf("unsupported operator: %s", op)
	}

	if rD == 0 {
		return 0, fmt.Errorf("zero denominator")
	}
	return float64(rN) / float64(rD), nil
}

func computeBinaryOp(aStr, op, bStr string) (float64, error) {
	a, err := strconv.ParseFloat(aStr, 64)
	if err != nil {
		return 0, err
	}
	b, err := strconv.ParseFloat(bStr, 64)
	if err != nil {
		return 0, err
	}

	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", op)
	}
}

// normalizeOp folds unicode multiplication and division symbols onto
// their ASCII forms.
func normalizeOp(op string) string {
	switch op {
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}
