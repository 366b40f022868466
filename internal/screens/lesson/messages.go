package lesson

import (
	"time"

	"github.com/abhisek/sciquest/internal/explain"
)

// lessonReadyMsg is sent when lesson generation finishes. Lesson is always
// non-nil; generation failures arrive as a placeholder lesson with Err set
// so the screen can explain what happened.
type lessonReadyMsg struct {
	Lesson *explain.Lesson
	Err    error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time
