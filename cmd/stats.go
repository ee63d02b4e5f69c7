package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sproutedu/sprout/internal/llm"
	"github.com/sproutedu/sprout/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <student-id>",
	Short: "Show a student's progress and session history",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("topic", "", "Also show performance on one topic")
	statsCmd.Flags().IntP("limit", "n", 20, "Number of recent sessions to show")
}

func runStats(cmd *cobra.Command, args []string) error {
	studentID := args[0]
	topic, _ := cmd.Flags().GetString("topic")
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath, err := resolveDBPath(cmd, "")
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	ctx := context.Background()

	prog, err := s.ProgressRepo().LoadProgress(ctx, studentID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if prog == nil {
		fmt.Printf("No progress recorded for %s yet.\n", studentID)
		return nil
	}

	fmt.Printf("Progress for %s\n", studentID)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Level:     %d (%d XP)\n", prog.Level, prog.TotalXP)
	fmt.Printf("Answered:  %d (%d correct)\n", prog.Stats.QuestionsAnswered, prog.Stats.CorrectAnswers)
	fmt.Printf("Sessions:  %d completed, %d perfect\n", prog.Stats.SessionsCompleted, prog.Stats.PerfectSessions)
	fmt.Printf("Streak:    best %d\n", prog.Stats.BestStreak)
	if len(prog.Badges) > 0 {
		ids := make([]string, len(prog.Badges))
		for i, b := range prog.Badges {
			ids[i] = b.BadgeID
		}
		fmt.Printf("Badges:    %s\n", strings.Join(ids, ", "))
	}
	if len(prog.Worlds) > 0 {
		fmt.Printf("Worlds:    %s\n", strings.Join(prog.Worlds, ", "))
	}

	if topic != "" {
		if err := printTopicStats(ctx, s, studentID, topic); err != nil {
			return err
		}
	}

	sessions, err := s.EventRepo().SessionHistory(ctx, studentID, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent sessions")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-19s  %-14s  %-10s  %-8s  %7s  %6s\n",
			"When", "Topic", "Action", "Answered", "Correct", "XP")
		fmt.Println(strings.Repeat("─", 78))
		for _, ev := range sessions {
			fmt.Printf("%-19s  %-14s  %-10s  %5d/%-2d  %7d  %6d\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(ev.Topic, 14),
				ev.Action,
				ev.QuestionsAnswered, ev.QuestionsTotal,
				ev.CorrectAnswers,
				ev.XPAwarded)
		}
	}

	counts, err := s.EventRepo().InterventionCounts(ctx, studentID)
	if err != nil {
		return fmt.Errorf("query interventions: %w", err)
	}
	if len(counts) > 0 {
		fmt.Println()
		fmt.Println("Interventions served")
		fmt.Println(strings.Repeat("─", 32))
		for _, kind := range []string{"encouragement", "hint", "worked-example", "break-suggestion", "topic-switch"} {
			if n := counts[kind]; n > 0 {
				fmt.Printf("%-18s %5d\n", kind, n)
			}
		}
	}

	return printModelUsage(ctx, s)
}

func printTopicStats(ctx context.Context, s *store.Store, studentID, topic string) error {
	state, err := s.PerformanceRepo().LoadPerformance(ctx, studentID, topic)
	if err != nil {
		return fmt.Errorf("load performance: %w", err)
	}
	if state == nil {
		fmt.Printf("\nNo history on %s yet.\n", topic)
		return nil
	}
	allTime, err := s.EventRepo().TopicAccuracy(ctx, studentID, topic)
	if err != nil {
		return fmt.Errorf("topic accuracy: %w", err)
	}

	fmt.Println()
	fmt.Printf("Topic: %s\n", topic)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Mastery:   %d/100\n", state.Mastery)
	fmt.Printf("Streak:    %d (longest %d)\n", state.Streak, state.LongestStreak)
	fmt.Printf("Accuracy:  %.0f%% recent, %.0f%% all time\n", state.AccuracyRate()*100, allTime*100)
	if len(state.Struggling) > 0 {
		fmt.Printf("Struggling: %s\n", strings.Join(state.Struggling, ", "))
	}
	if len(state.Strengths) > 0 {
		fmt.Printf("Strengths:  %s\n", strings.Join(state.Strengths, ", "))
	}
	return nil
}

// printModelUsage reports token consumption across all students with
// estimated cost where pricing is known.
func printModelUsage(ctx context.Context, s *store.Store) error {
	usage, err := s.EventRepo().LLMUsage(ctx)
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}
	if len(usage) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Model usage (all students)")
	fmt.Println(strings.Repeat("─", 88))
	fmt.Printf("%-10s  %-28s  %6s  %6s  %10s  %10s  %9s\n",
		"Provider", "Model", "Calls", "Failed", "Input", "Output", "Cost")
	fmt.Println(strings.Repeat("─", 88))

	var totalCost float64
	var unknownModels []string
	for _, row := range usage {
		cost := llm.LookupCost(row.Model)
		if cost == nil {
			unknownModels = append(unknownModels, row.Model)
			fmt.Printf("%-10s  %-28s  %6d  %6d  %10d  %10d  %9s\n",
				row.Provider, truncate(row.Model, 28), row.Requests, row.Failures,
				row.InputTokens, row.OutputTokens, "?")
			continue
		}
		c := cost.Cost(row.InputTokens, row.OutputTokens)
		totalCost += c
		fmt.Printf("%-10s  %-28s  %6d  %6d  %10d  %10d  %9s\n",
			row.Provider, truncate(row.Model, 28), row.Requests, row.Failures,
			row.InputTokens, row.OutputTokens, formatCost(c))
	}

	fmt.Println(strings.Repeat("─", 88))
	label := "TOTAL"
	if len(unknownModels) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf("%-10s  %-28s  %6s  %6s  %10s  %10s  %9s\n",
		"", label, "", "", "", "", formatCost(totalCost))

	if len(unknownModels) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
