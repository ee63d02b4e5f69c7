package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sproutedu/sprout/internal/intervention"
	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/question"
	"github.com/sproutedu/sprout/internal/session"
	"github.com/sproutedu/sprout/internal/store"
	"github.com/sproutedu/sprout/internal/zpd"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted practice session against the engine",
	Long: `Walk one student through a catalog-backed session and print every
engine decision: struggle support, interventions, difficulty moves, and
the final reward grant. No network, no model calls.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("student", "demo-kid", "Student ID to practice as")
	demoCmd.Flags().String("topic", "fractions", "Catalog topic to practice")
}

func runDemo(cmd *cobra.Command, args []string) error {
	student, _ := cmd.Flags().GetString("student")
	topic, _ := cmd.Flags().GetString("topic")
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd, "")
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc, err := session.New(session.DefaultConfig(), st.PerformanceRepo(), st.ProgressRepo(),
		store.NewRecorder(st.EventRepo(), zap.NewNop()))
	if err != nil {
		return fmt.Errorf("build session service: %w", err)
	}

	catalog := qgen.NewStatic(nil)
	questions, err := qgen.Batch(ctx, catalog, qgen.GenerateInput{
		Topic:      topic,
		Difficulty: question.DifficultyMedium,
	}, 3)
	if err != nil {
		return fmt.Errorf("pick catalog questions: %w", err)
	}

	sess, err := svc.Start(ctx, session.StartInput{
		StudentID: student,
		Topic:     topic,
		Questions: questions,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Sprout demo: %s practicing %s\n", student, topic)
	fmt.Printf("Session %s (%d questions, starting at %s)\n",
		sess.ID[:8], len(sess.Questions), sess.Difficulty)

	// Question 1: right on the first try, quickly.
	printQuestion(1, len(sess.Questions), &sess.Questions[0])
	result, err := svc.Submit(ctx, sess.ID, session.SubmitInput{
		QuestionID:  sess.Questions[0].ID,
		Value:       correctValue(&sess.Questions[0]),
		TimeSpentMs: 6000,
	})
	if err != nil {
		return err
	}
	printResolved(result)

	// Question 2: two misses, a requested hint in between, then a save.
	q2 := &result.Session.Questions[1]
	printQuestion(2, len(sess.Questions), q2)
	result, err = svc.Submit(ctx, sess.ID, session.SubmitInput{
		QuestionID: q2.ID, Value: wrongValue(q2), TimeSpentMs: 15000,
	})
	if err != nil {
		return err
	}
	printRetry(result)

	hint, err := svc.RequestHint(ctx, sess.ID)
	if err != nil {
		return err
	}
	if h := hint.Support.Hint; h != nil {
		fmt.Printf("Hint requested → [%d] %s: %s\n", h.Level, h.Kind, h.Text)
	}

	result, err = svc.Submit(ctx, sess.ID, session.SubmitInput{
		QuestionID: q2.ID, Value: wrongValue(q2), TimeSpentMs: 15000,
	})
	if err != nil {
		return err
	}
	printRetry(result)

	result, err = svc.Submit(ctx, sess.ID, session.SubmitInput{
		QuestionID: q2.ID, Value: correctValue(q2), TimeSpentMs: 20000,
	})
	if err != nil {
		return err
	}
	printResolved(result)

	// Question 3: the student stalls, the caller checks in, frustration
	// comes through, and the engine reacts before the final answer.
	q3 := &result.Session.Questions[2]
	printQuestion(3, len(sess.Questions), q3)

	fmt.Println("(65 seconds pass without an answer)")
	check, err := svc.CheckIn(ctx, sess.ID, 65000)
	if err != nil {
		return err
	}
	if check.NeedsIntervention {
		fmt.Printf("Check-in → stuck, serving %s\n", describe(check.Intervention))
	}

	frust, err := svc.ReportFrustration(ctx, sess.ID, 0.8)
	if err != nil {
		return err
	}
	fmt.Printf("Frustration 0.8 reported → %s\n", describe(frust))

	result, err = svc.Submit(ctx, sess.ID, session.SubmitInput{
		QuestionID: q3.ID, Value: correctValue(q3), TimeSpentMs: 70000,
	})
	if err != nil {
		return err
	}
	printResolved(result)

	if !result.Completed || result.Rewards == nil {
		return fmt.Errorf("session did not complete as scripted")
	}
	printRewards(result)

	fmt.Printf("\nRun `sprout stats %s` to see the recorded history.\n", student)
	return nil
}

func printQuestion(n, total int, q *question.Question) {
	fmt.Printf("\n── Question %d/%d ──\n", n, total)
	fmt.Println(q.Prompt)
	if mc, ok := q.Content.(question.MultipleChoice); ok {
		for i, c := range mc.Choices {
			fmt.Printf("  %d) %s\n", i+1, c)
		}
	}
}

func printRetry(r *session.SubmitResult) {
	fmt.Printf("\033[31m✗ Wrong\033[0m (attempt %d, %d left)\n", r.Attempts, r.AttemptsLeft)
	if r.Support != nil && r.Support.Hint != nil {
		h := r.Support.Hint
		fmt.Printf("   hint served → [%d] %s: %s\n", h.Level, h.Kind, h.Text)
	}
	if r.Support != nil && r.Support.WorkedExample != nil {
		fmt.Printf("   worked example served (%d steps)\n", len(r.Support.WorkedExample.Steps))
	}
	if r.Intervention != nil {
		fmt.Printf("   %s\n", describe(r.Intervention))
	}
}

func printResolved(r *session.SubmitResult) {
	if r.Correct {
		fmt.Printf("\033[32m✓ Correct\033[0m on attempt %d\n", r.Attempts)
	} else {
		fmt.Printf("\033[31m✗ Out of attempts\033[0m (%d used)\n", r.Attempts)
	}
	if d := r.Difficulty; d != nil {
		printDecision(d)
	}
	if r.Intervention != nil {
		fmt.Printf("   %s\n", describe(r.Intervention))
	}
}

func printDecision(d *zpd.Decision) {
	if d.Moved() {
		fmt.Printf("   difficulty: %s → %s (%s)\n", d.From, d.To, d.Reason)
		return
	}
	fmt.Printf("   difficulty: holding at %s (%s)\n", d.To, d.Reason)
}

func describe(d *intervention.Decision) string {
	return fmt.Sprintf("%s [%s] %s", d.Kind, d.Priority, d.MessageKey)
}

func printRewards(r *session.SubmitResult) {
	sum := r.Rewards
	fmt.Printf("\n── Session complete ──\n")
	fmt.Printf("XP earned:   %d", sum.XP)
	if sum.BadgeXP > 0 {
		fmt.Printf(" (+%d badge bonus)", sum.BadgeXP)
	}
	fmt.Println()
	if sum.LeveledUp {
		fmt.Printf("Level up!    %d → %d\n", sum.LevelBefore, sum.LevelAfter)
	} else {
		fmt.Printf("Level:       %d\n", sum.LevelAfter)
	}
	for _, b := range sum.NewBadges {
		fmt.Printf("New badge:   %s (%s): %s\n", b.Name, b.Rarity, b.Description)
	}
	for _, w := range sum.UnlockedWorlds {
		fmt.Printf("Unlocked:    %s\n", w.Name)
	}

	report := session.BuildReport(r.Session)
	fmt.Printf("Accuracy:    %d/%d correct, %d hints used\n",
		report.TotalCorrect, report.TotalAnswered, report.HintsUsed)
}

// correctValue renders a submission CheckAnswer accepts for the
// question's content.
func correctValue(q *question.Question) string {
	switch c := q.Content.(type) {
	case question.MultipleChoice:
		return strconv.Itoa(c.CorrectIndex + 1)
	case question.MultipleSelect:
		parts := make([]string, len(c.CorrectIndices))
		for i, idx := range c.CorrectIndices {
			parts[i] = strconv.Itoa(idx + 1)
		}
		return strings.Join(parts, ",")
	case question.FillBlank:
		return c.Accepted[0]
	case question.TrueFalse:
		return strconv.FormatBool(c.Answer)
	case question.Numeric:
		return strconv.FormatFloat(c.Answer, 'f', -1, 64)
	case question.ShortAnswer:
		return c.Accepted[0]
	case question.OpenResponse:
		return "I split the problem into steps and solved each one."
	case question.Matching:
		parts := make([]string, len(c.Pairs))
		for left, right := range c.Pairs {
			parts[left] = fmt.Sprintf("%d:%d", left, right)
		}
		return strings.Join(parts, ",")
	case question.Ordering:
		parts := make([]string, len(c.Correct))
		for pos, idx := range c.Correct {
			parts[pos] = strconv.Itoa(idx)
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// wrongValue renders a plausible but incorrect submission.
func wrongValue(q *question.Question) string {
	switch c := q.Content.(type) {
	case question.MultipleChoice:
		return strconv.Itoa((c.CorrectIndex+1)%len(c.Choices) + 1)
	case question.TrueFalse:
		return strconv.FormatBool(!c.Answer)
	case question.Numeric:
		return strconv.FormatFloat(c.Answer+1000, 'f', -1, 64)
	default:
		return "not-it"
	}
}
