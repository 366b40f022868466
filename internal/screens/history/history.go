package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/screen"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/abhisek/sciquest/internal/ui/layout"
	"github.com/abhisek/sciquest/internal/ui/theme"
)

type historyLoadedMsg struct {
	Lessons []store.LessonRecord
	Quizzes map[string]*store.QuizRecord // sessionID → quiz result
	Err     error
}

// HistoryScreen displays past lessons and their quiz scores.
type HistoryScreen struct {
	eventRepo store.EventRepo
	lessons   []store.LessonRecord
	quizzes   map[string]*store.QuizRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		lessons, err := s.eventRepo.QueryLessons(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		quizzes := make(map[string]*store.QuizRecord)
		for _, l := range lessons {
			quiz, err := s.eventRepo.QuizBySession(ctx, l.SessionID)
			if err != nil {
				continue
			}
			if quiz != nil {
				quizzes[l.SessionID] = quiz
			}
		}

		return historyLoadedMsg{Lessons: lessons, Quizzes: quizzes}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.lessons = msg.Lessons
			s.quizzes = msg.Quizzes
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.lessons)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.lessons) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No lessons yet. Go learn something!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, lesson := range s.lessons {
		dateStr := lesson.Timestamp.Format("Jan 02, 2006")

		scoreStr := "no quiz"
		if quiz, ok := s.quizzes[lesson.SessionID]; ok && quiz.Questions > 0 {
			scoreStr = fmt.Sprintf("%d/%d correct", quiz.Correct, quiz.Questions)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-30s  %-12s  %s",
			prefix, dateStr, truncate(lesson.Topic, 30), lesson.Difficulty, scoreStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Expanded: lesson title and first fun fact as a reminder.
		if s.expanded[i] {
			detail := lesson.Title
			if len(lesson.FunFacts) > 0 {
				detail += "  ·  " + lesson.FunFacts[0]
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("    "+truncate(detail, width-12))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
