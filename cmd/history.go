package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/sciquest/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past lessons and quiz scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		lessons, err := s.EventRepo().QueryLessons(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query lessons: %w", err)
		}

		if len(lessons) == 0 {
			fmt.Println("No lessons yet. Run `sciquest` and pick a topic.")
			return nil
		}

		fmt.Printf("%-19s  %-32s  %-12s  %s\n", "Date", "Topic", "Difficulty", "Score")
		fmt.Println(strings.Repeat("─", 78))

		for _, l := range lessons {
			score := "-"
			q, err := s.EventRepo().QuizBySession(ctx, l.SessionID)
			if err != nil {
				return fmt.Errorf("query quiz for %s: %w", l.SessionID, err)
			}
			if q != nil {
				score = fmt.Sprintf("%d/%d", q.Correct, q.Questions)
			}
			fmt.Printf("%-19s  %-32s  %-12s  %s\n",
				l.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(l.Topic, 32),
				l.Difficulty,
				score,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of lessons to show")
}
