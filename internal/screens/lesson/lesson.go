package lesson

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/screen"
	"github.com/abhisek/sciquest/internal/screens/quizscreen"
	"github.com/abhisek/sciquest/internal/session"
	"github.com/abhisek/sciquest/internal/speech"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/abhisek/sciquest/internal/ui/layout"
	"github.com/abhisek/sciquest/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// LessonScreen generates and displays one topic lesson.
type LessonScreen struct {
	explainSvc *explain.Service
	quizGen    *quiz.Generator
	eventRepo  store.EventRepo
	speaker    *speech.Speaker

	topic      string
	difficulty content.Difficulty

	sess    *session.Session
	lesson  *explain.Lesson
	genErr  error
	scroll  int
	spinner int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen that generates a lesson on Init.
func New(explainSvc *explain.Service, quizGen *quiz.Generator, eventRepo store.EventRepo, speaker *speech.Speaker, topic string, difficulty content.Difficulty) *LessonScreen {
	return &LessonScreen{
		explainSvc: explainSvc,
		quizGen:    quizGen,
		eventRepo:  eventRepo,
		speaker:    speaker,
		topic:      topic,
		difficulty: difficulty,
		sess:       session.New(topic, difficulty),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	return tea.Batch(l.generateLesson(), spinnerTick())
}

func (l *LessonScreen) Title() string {
	return "Lesson"
}

// Difficulty reports the lesson's difficulty for the header.
func (l *LessonScreen) Difficulty() content.Difficulty {
	return l.difficulty
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.lesson == nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Take the quiz"},
		{Key: "↑↓", Description: "Scroll"},
	}
	if l.speaker != nil && l.speaker.Available() {
		if l.speaker.Speaking() {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Stop reading"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "S", Description: "Read aloud"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

// generateLesson runs lesson generation off the UI loop. Failure never
// blocks the flow: the learner gets a placeholder lesson and a notice.
func (l *LessonScreen) generateLesson() tea.Cmd {
	svc := l.explainSvc
	repo := l.eventRepo
	sess := l.sess
	topic, difficulty := l.topic, l.difficulty

	return func() tea.Msg {
		ctx := context.Background()

		lesson, err := svc.Generate(ctx, topic, difficulty)
		if err != nil {
			lesson = explain.Placeholder(topic, difficulty)
		}
		_ = sess.SetLesson(ctx, repo, lesson)

		return lessonReadyMsg{Lesson: lesson, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if l.lesson != nil {
			return l, nil
		}
		l.spinner++
		return l, spinnerTick()

	case lessonReadyMsg:
		l.lesson = msg.Lesson
		l.genErr = msg.Err
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if l.speaker != nil {
			l.speaker.Stop()
		}
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if l.scroll > 0 {
			l.scroll--
		}
		return l, nil

	case "down", "j":
		l.scroll++
		return l, nil

	case "s":
		if l.lesson != nil && l.speaker != nil && l.speaker.Available() {
			if l.speaker.Speaking() {
				l.speaker.Stop()
			} else {
				_ = l.speaker.Speak(l.lesson.Explanation)
			}
		}
		return l, nil

	case "enter":
		if l.lesson == nil {
			return l, nil
		}
		if l.speaker != nil {
			l.speaker.Stop()
		}
		qs := quizscreen.New(l.quizGen, l.eventRepo, l.speaker, l.sess)
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: qs}
		}
	}
	return l, nil
}

func (l *LessonScreen) View(width, height int) string {
	if l.lesson == nil {
		frame := spinnerFrames[l.spinner%len(spinnerFrames)]
		loading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(frame+"  Preparing your lesson on "+l.topic+"...") +
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

	sections = append(sections, theme.Title.Width(cw).Render(l.lesson.Title))
	sections = append(sections, theme.Subtitle.Width(cw).
		Render(l.topic+"  ·  "+l.difficulty.Label()))

	if note := sourceNote(l.lesson.Source, l.genErr); note != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).Width(cw).Render(note))
	}

	sections = append(sections, "")
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw).
		Render(l.lesson.Explanation)
	sections = append(sections, body)

	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Secondary).Bold(true).Render("✦ Fun Facts"))
	for _, fact := range l.lesson.FunFacts {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).Width(cw).Render("  • "+fact))
	}

	content := strings.Join(sections, "\n")
	return scrollWindow(content, l.scroll, height)
}

// sourceNote explains degraded lessons to the learner.
func sourceNote(source explain.Source, err error) string {
	switch source {
	case explain.SourcePlaceholder:
		if err != nil {
			return "⚠ The AI tutor is unreachable right now, so this is a stand-in lesson."
		}
		return "⚠ This is a stand-in lesson."
	case explain.SourceScraped:
		return "" // recovered content reads fine, no need to call it out
	default:
		return ""
	}
}

// scrollWindow clamps the scroll offset and returns the visible slice of
// content lines.
func scrollWindow(content string, scroll, height int) string {
	lines := strings.Split(content, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}

	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[scroll:end]

	// Indent the whole block a little for breathing room.
	for i, line := range visible {
		visible[i] = "    " + line
	}
	return strings.Join(visible, "\n")
}
