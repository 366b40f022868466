package quizscreen

import (
	"time"

	"github.com/abhisek/sciquest/internal/quiz"
)

// quizReadyMsg is sent when quiz generation finishes. Quiz is always
// non-nil; failures arrive as the placeholder quiz with Err set.
type quizReadyMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// finishMsg triggers grading and the jump to the summary screen.
type finishMsg struct{}
