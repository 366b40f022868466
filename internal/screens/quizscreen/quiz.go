package quizscreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/screen"
	"github.com/abhisek/sciquest/internal/screens/summary"
	"github.com/abhisek/sciquest/internal/session"
	"github.com/abhisek/sciquest/internal/speech"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/abhisek/sciquest/internal/ui/components"
	"github.com/abhisek/sciquest/internal/ui/layout"
	"github.com/abhisek/sciquest/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen runs the quiz for the session's topic, one question at a time.
type QuizScreen struct {
	quizGen   *quiz.Generator
	eventRepo store.EventRepo
	speaker   *speech.Speaker
	sess      *session.Session

	qz       *quiz.Quiz
	genErr   error
	current  int
	mc       components.MultiChoice
	feedback bool
	spinner  int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that generates its quiz on Init.
func New(quizGen *quiz.Generator, eventRepo store.EventRepo, speaker *speech.Speaker, sess *session.Session) *QuizScreen {
	return &QuizScreen{
		quizGen:   quizGen,
		eventRepo: eventRepo,
		speaker:   speaker,
		sess:      sess,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.generateQuiz(), spinnerTick())
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

// Difficulty reports the quiz's difficulty for the header.
func (q *QuizScreen) Difficulty() content.Difficulty {
	return q.sess.Difficulty
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.qz == nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if q.feedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "A-D", Description: "Quick answer"},
	}
	if q.speaker != nil && q.speaker.Available() {
		if q.speaker.Speaking() {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Stop reading"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Read aloud"})
		}
	}
	return hints
}

// generateQuiz runs quiz generation off the UI loop. Failure falls back
// to the canned general-science quiz so the flow always completes.
func (q *QuizScreen) generateQuiz() tea.Cmd {
	gen := q.quizGen
	sess := q.sess

	return func() tea.Msg {
		qz, err := gen.Generate(context.Background(), sess.Topic, sess.Difficulty)
		if err != nil {
			qz = quiz.Placeholder(sess.Topic, sess.Difficulty)
		}
		return quizReadyMsg{Quiz: qz, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if q.qz != nil {
			return q, nil
		}
		q.spinner++
		return q, spinnerTick()

	case quizReadyMsg:
		q.qz = msg.Quiz
		q.genErr = msg.Err
		q.sess.SetQuiz(msg.Quiz)
		q.mc = q.makeChoice(0)
		return q, nil

	case finishMsg:
		return q.finish()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) makeChoice(i int) components.MultiChoice {
	question := q.qz.Questions[i]
	return components.NewMultiChoice(question.Text, question.Options, question.CorrectIndex)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" && !q.feedback {
		if q.speaker != nil {
			q.speaker.Stop()
		}
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if q.qz == nil {
		return q, nil
	}

	// Feedback overlay: any key advances.
	if q.feedback {
		q.feedback = false
		if q.speaker != nil {
			q.speaker.Stop()
		}
		if q.current+1 >= len(q.qz.Questions) {
			return q, func() tea.Msg { return finishMsg{} }
		}
		q.current++
		q.mc = q.makeChoice(q.current)
		return q, nil
	}

	if msg.String() == "s" {
		q.toggleSpeech()
		return q, nil
	}

	wasSubmitted := q.mc.Submitted
	var cmd tea.Cmd
	q.mc, cmd = q.mc.Update(msg)

	if q.mc.Submitted && !wasSubmitted {
		q.feedback = true
		_ = q.sess.Answer(context.Background(), q.eventRepo, q.current, q.mc.ChosenIndex)
	}

	return q, cmd
}

// toggleSpeech reads the current question and its options aloud, or stops
// an utterance in progress.
func (q *QuizScreen) toggleSpeech() {
	if q.speaker == nil || !q.speaker.Available() {
		return
	}
	if q.speaker.Speaking() {
		q.speaker.Stop()
		return
	}

	question := q.qz.Questions[q.current]
	var b strings.Builder
	b.WriteString(question.Text)
	for i, opt := range question.Options {
		b.WriteString(" Option ")
		b.WriteString(quiz.OptionLabel(i))
		b.WriteString(": ")
		b.WriteString(opt)
		b.WriteString(".")
	}
	_ = q.speaker.Speak(b.String())
}

func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	if q.speaker != nil {
		q.speaker.Stop()
	}
	result, _ := q.sess.Finish(context.Background(), q.eventRepo)

	s := summary.New(q.sess, result)
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.qz == nil {
		frame := spinnerFrames[q.spinner%len(spinnerFrames)]
		loading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(frame+"  Writing quiz questions on "+q.sess.Topic+"...") +
			"\n\n" +
			theme.Hint.Render("this usually takes a few seconds")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, loading)
	}

	cw := width - 8
	if cw > 76 {
		cw = 76
	}
	if cw < 20 {
		cw = 20
	}

	var sections []string

	// Progress header.
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", q.current+1, len(q.qz.Questions)),
		float64(q.current)/float64(len(q.qz.Questions)),
		false, cw)
	sections = append(sections, progress.View())

	if q.qz.Source == quiz.SourcePlaceholder {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).Width(cw).
			Render("⚠ Quiz generation failed, so here is a general science quiz instead."))
	}

	sections = append(sections, "")
	sections = append(sections, q.mc.View())

	// Feedback: verdict plus the model's explanation of the right answer.
	if q.feedback {
		question := q.qz.Questions[q.current]
		if q.mc.IsCorrect() {
			sections = append(sections, theme.Correct.Render("✓ Correct!"))
		} else {
			sections = append(sections, theme.Incorrect.Render(
				"✗ Not quite. The answer is "+quiz.OptionLabel(question.CorrectIndex)+"."))
		}
		if question.Explanation != "" {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.TextDim).Width(cw).Render(question.Explanation))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
