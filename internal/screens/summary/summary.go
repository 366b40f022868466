package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/screen"
	"github.com/abhisek/sciquest/internal/session"
	"github.com/abhisek/sciquest/internal/ui/layout"
	"github.com/abhisek/sciquest/internal/ui/theme"
)

// SummaryScreen shows the graded quiz with a per-question review.
type SummaryScreen struct {
	sess    *session.Session
	result  quiz.Result
	showing bool // per-question review expanded
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished session.
func New(sess *session.Session, result quiz.Result) *SummaryScreen {
	return &SummaryScreen{sess: sess, result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	reviewHint := "Show review"
	if s.showing {
		reviewHint = "Hide review"
	}
	return []layout.KeyHint{
		{Key: "R", Description: reviewHint},
		{Key: "Esc", Description: "Back to lesson"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		s.showing = !s.showing
		return s, nil
	case "esc", "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 20 {
		cw = 20
	}

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render("Quiz Complete!"))
	sections = append(sections, theme.Subtitle.Width(cw).
		Render(s.sess.Topic+"  ·  "+s.sess.Difficulty.Label()))
	sections = append(sections, "")

	score := fmt.Sprintf("%d / %d  (%d%%)", s.result.Correct, s.result.Total, s.result.Percent())
	scoreStyle := theme.Correct
	if s.result.Percent() < 60 {
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	sections = append(sections, theme.Card.Width(cw).Render(
		lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, scoreStyle.Render(score))))

	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).Width(cw).Align(lipgloss.Center).
		Render(s.result.Message()))

	if s.showing {
		sections = append(sections, "")
		for i, outcome := range s.result.Outcomes {
			mark := theme.Correct.Render("✓")
			if !outcome.Correct {
				mark = theme.Incorrect.Render("✗")
			}
			line := fmt.Sprintf("%s Q%d  %s", mark, i+1, outcome.Question.Text)
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Text).Width(cw).Render(line))

			if !outcome.Correct {
				detail := "    answer: " + quiz.OptionLabel(outcome.Question.CorrectIndex) +
					") " + outcome.Question.Options[outcome.Question.CorrectIndex]
				if outcome.ChosenIndex >= 0 {
					detail += "   you chose: " + quiz.OptionLabel(outcome.ChosenIndex)
				}
				sections = append(sections, lipgloss.NewStyle().
					Foreground(theme.TextDim).Width(cw).Render(detail))
			}
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
