package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/sciquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.EventRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.Lessons == 0 {
			fmt.Println("No activity yet. Run `sciquest` and pick a topic.")
			return nil
		}

		fmt.Println("Learning Statistics")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-22s %d\n", "Lessons studied", stats.Lessons)
		fmt.Printf("%-22s %d\n", "Distinct topics", stats.Topics)
		fmt.Printf("%-22s %d\n", "Quizzes taken", stats.QuizzesTaken)
		fmt.Printf("%-22s %d\n", "Questions answered", stats.QuestionsServed)
		if stats.QuestionsServed > 0 {
			accuracy := stats.CorrectAnswers * 100 / stats.QuestionsServed
			fmt.Printf("%-22s %d%% (%d correct)\n", "Accuracy", accuracy, stats.CorrectAnswers)
		}

		topics, err := s.EventRepo().RecentTopics(ctx, 5)
		if err != nil {
			return fmt.Errorf("query topics: %w", err)
		}
		if len(topics) > 0 {
			fmt.Println()
			fmt.Println("Recent topics:", strings.Join(topics, ", "))
		}
		return nil
	},
}
