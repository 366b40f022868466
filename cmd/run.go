package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/sciquest/internal/app"
	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/llm"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/speech"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lessons and quizzes will be placeholders until a provider is set up.")
		provider = llm.NewUnavailableProvider(err)
	}

	speaker := speech.NewSpeaker()
	if !speaker.Available() {
		fmt.Fprintln(os.Stderr, "No text-to-speech engine found; read-aloud disabled.")
	}

	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	return app.Run(app.Options{
		ExplainService: explain.NewService(provider, explain.DefaultConfig()),
		QuizGenerator:  quiz.NewGenerator(provider, quiz.DefaultConfig()),
		EventRepo:      eventRepo,
		Speaker:        speaker,
		SkipSplash:     skipSplash,
	})
}
