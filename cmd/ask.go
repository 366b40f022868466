package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/llm"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/session"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <topic>",
	Short: "Print a one-shot lesson and quiz to stdout (no TUI)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")

		level, _ := cmd.Flags().GetString("difficulty")
		difficulty, err := content.ParseDifficulty(level)
		if err != nil {
			return err
		}
		withQuiz, _ := cmd.Flags().GetBool("quiz")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		return runAsk(ctx, os.Stdout, provider, s.EventRepo(), topic, difficulty, withQuiz)
	},
}

// runAsk generates a lesson (and optionally a quiz), prints them, and
// records the lesson in the event log so it shows up in history and export
// like any TUI session.
func runAsk(ctx context.Context, out io.Writer, provider llm.Provider, repo store.EventRepo, topic string, difficulty content.Difficulty, withQuiz bool) error {
	svc := explain.NewService(provider, explain.DefaultConfig())
	lesson, err := svc.Generate(ctx, topic, difficulty)
	if err != nil {
		return fmt.Errorf("generate lesson: %w", err)
	}

	sess := session.New(lesson.Topic, difficulty)
	if err := sess.SetLesson(ctx, repo, lesson); err != nil {
		return err
	}

	sep := strings.Repeat("─", 72)

	fmt.Fprintln(out, lesson.Title)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, lesson.Explanation)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Fun Facts")
	for _, fact := range lesson.FunFacts {
		fmt.Fprintln(out, "  •", fact)
	}

	if !withQuiz {
		return nil
	}

	gen := quiz.NewGenerator(provider, quiz.DefaultConfig())
	qz, err := gen.Generate(ctx, topic, difficulty)
	if err != nil {
		return fmt.Errorf("generate quiz: %w", err)
	}
	sess.SetQuiz(qz)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Quiz")
	fmt.Fprintln(out, sep)
	for i, q := range qz.Questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "   %s) %s\n", quiz.OptionLabel(j), opt)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Answers")
	for i, q := range qz.Questions {
		fmt.Fprintf(out, "%d. %s", i+1, quiz.OptionLabel(q.CorrectIndex))
		if q.Explanation != "" {
			fmt.Fprintf(out, "  %s", q.Explanation)
		}
		fmt.Fprintln(out)
	}

	return nil
}

func init() {
	askCmd.Flags().StringP("difficulty", "d", "intermediate", "Difficulty level: beginner, intermediate, or advanced")
	askCmd.Flags().Bool("quiz", true, "Include a quiz after the lesson")
}
