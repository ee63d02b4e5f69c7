package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sproutedu/sprout/internal/app"
	"github.com/sproutedu/sprout/internal/qgen"
	"github.com/sproutedu/sprout/internal/question"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate questions with the configured model provider",
	Long: `Generate and print questions for a topic without touching the database.

Useful for evaluating generation quality and prompt changes. Requires a
configured model provider (SPROUT_LLM_PROVIDER or a standard API key
env var).`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().String("topic", "", "Topic to generate for (required)")
	genCmd.Flags().String("subtopic", "", "Optional subtopic")
	genCmd.Flags().String("difficulty", "medium", "Difficulty band: beginner, easy, medium, hard, or advanced")
	genCmd.Flags().Int("count", 3, "Number of questions to generate")
	genCmd.Flags().StringSlice("type", nil, "Restrict question types (e.g. numeric,multiple-choice)")
	genCmd.Flags().Bool("answers", false, "Also print answers and scaffolding")
	_ = genCmd.MarkFlagRequired("topic")
}

func runGen(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	subtopic, _ := cmd.Flags().GetString("subtopic")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")
	typeVals, _ := cmd.Flags().GetStringSlice("type")
	showAnswers, _ := cmd.Flags().GetBool("answers")

	difficulty, err := question.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}
	var types []question.Type
	for _, tv := range typeVals {
		t := question.Type(tv)
		if !t.Valid() {
			return fmt.Errorf("unknown question type %q", tv)
		}
		types = append(types, t)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// No event logging: gen is a stateless developer tool.
	provider, err := app.BuildProvider(ctx, cfg.LLM, nil)
	if err != nil {
		return fmt.Errorf("model provider: %w", err)
	}
	gen := qgen.New(provider, qgen.DefaultConfig())

	fmt.Printf("Generating %d %s questions on %s...\n", count, difficulty, topic)

	input := qgen.GenerateInput{
		Topic:      topic,
		Subtopic:   subtopic,
		Difficulty: difficulty,
		Types:      types,
	}
	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, input)
		if err != nil {
			fmt.Printf("\n── Question %d/%d ──\ngeneration failed: %v\n", i, count, err)
			continue
		}
		input.PriorPrompts = append(input.PriorPrompts, q.Prompt)

		fmt.Printf("\n── Question %d/%d ──\n", i, count)
		printGenerated(q, showAnswers)
	}
	return nil
}

func printGenerated(q *question.Question, showAnswers bool) {
	fmt.Println(q.Prompt)
	if mc, ok := q.Content.(question.MultipleChoice); ok {
		for i, c := range mc.Choices {
			fmt.Printf("  %d) %s\n", i+1, c)
		}
	}
	fmt.Printf("[%s · %s · %s load · %ds · %d pts]\n",
		q.Type, q.Difficulty, q.CognitiveLoad, q.EstimatedTimeSeconds, q.Points)

	if !showAnswers {
		return
	}
	fmt.Printf("answer: %s\n", correctValue(q))
	for _, h := range q.Scaffolding.Hints {
		fmt.Printf("hint %d (%s): %s\n", h.Level, h.Kind, h.Text)
	}
	if we := q.Scaffolding.WorkedExample; we != nil {
		fmt.Printf("worked example: %s\n", we.Intro)
		for i, s := range we.Steps {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
	}
}
