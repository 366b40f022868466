package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/screen"
	"github.com/abhisek/sciquest/internal/screens/history"
	lessonscreen "github.com/abhisek/sciquest/internal/screens/lesson"
	"github.com/abhisek/sciquest/internal/speech"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/abhisek/sciquest/internal/ui/components"
	"github.com/abhisek/sciquest/internal/ui/layout"
	"github.com/abhisek/sciquest/internal/ui/theme"
)

// focus zones cycled with tab.
const (
	focusInput = iota
	focusPicker
	focusMenu
)

const maxRecentTopics = 5

type recentTopicsMsg struct {
	Topics []string
	Stats  *store.LearningStats
}

// HomeScreen is the topic prompt: type a topic, pick a difficulty, go.
type HomeScreen struct {
	explainSvc *explain.Service
	quizGen    *quiz.Generator
	eventRepo  store.EventRepo
	speaker    *speech.Speaker

	input    components.TextInput
	picker   components.Picker
	menu     components.Menu
	focus    int
	recent   []string
	stats    *store.LearningStats
	inputErr string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(explainSvc *explain.Service, quizGen *quiz.Generator, eventRepo store.EventRepo, speaker *speech.Speaker) *HomeScreen {
	labels := make([]string, len(content.Difficulties))
	for i, d := range content.Difficulties {
		labels[i] = d.Label()
	}

	h := &HomeScreen{
		explainSvc: explainSvc,
		quizGen:    quizGen,
		eventRepo:  eventRepo,
		speaker:    speaker,
		input:      components.NewTextInput("What do you want to learn about?", content.MaxTopicLen),
		picker:     components.NewPicker(labels),
	}
	h.rebuildMenu()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return tea.Batch(h.input.Init(), h.loadRecent())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch h.focus {
	case focusPicker:
		return []layout.KeyHint{
			{Key: "←→", Description: "Difficulty"},
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case focusMenu:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start lesson"},
			{Key: "Tab", Description: "Next field"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

// Difficulty returns the currently picked difficulty.
func (h *HomeScreen) Difficulty() content.Difficulty {
	return content.Difficulties[h.picker.Selected]
}

func (h *HomeScreen) loadRecent() tea.Cmd {
	if h.eventRepo == nil {
		return nil
	}
	repo := h.eventRepo
	return func() tea.Msg {
		ctx := context.Background()
		topics, err := repo.RecentTopics(ctx, maxRecentTopics)
		if err != nil {
			return recentTopicsMsg{}
		}
		stats, _ := repo.Stats(ctx)
		return recentTopicsMsg{Topics: topics, Stats: stats}
	}
}

func (h *HomeScreen) rebuildMenu() {
	var items []components.MenuItem

	for _, topic := range h.recent {
		t := topic
		items = append(items, components.MenuItem{
			Label: "↻ " + t,
			Action: func() tea.Cmd {
				return h.startLesson(t)
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			repo := h.eventRepo
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
}

// startLesson pushes the lesson screen for a topic at the current difficulty.
func (h *HomeScreen) startLesson(topic string) tea.Cmd {
	difficulty := h.Difficulty()
	s := lessonscreen.New(h.explainSvc, h.quizGen, h.eventRepo, h.speaker, topic, difficulty)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) submitTopic() tea.Cmd {
	topic, err := content.NormalizeTopic(h.input.Value())
	if err != nil {
		h.inputErr = "Type a topic first, like \"black holes\" or \"photosynthesis\"."
		h.input.Submit(false)
		return nil
	}
	h.inputErr = ""
	h.input.Reset()
	return h.startLesson(topic)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recentTopicsMsg:
		h.recent = msg.Topics
		h.stats = msg.Stats
		h.rebuildMenu()
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			h.focus = (h.focus + 1) % 3
			return h, nil
		case "shift+tab":
			h.focus = (h.focus + 2) % 3
			return h, nil
		}

		switch h.focus {
		case focusInput:
			if msg.String() == "enter" {
				return h, h.submitTopic()
			}
			var cmd tea.Cmd
			h.input, cmd = h.input.Update(msg)
			return h, cmd

		case focusPicker:
			if msg.String() == "enter" {
				return h, h.submitTopic()
			}
			h.picker.Focused = true
			var cmd tea.Cmd
			h.picker, cmd = h.picker.Update(msg)
			h.picker.Focused = false
			return h, cmd

		case focusMenu:
			var cmd tea.Cmd
			h.menu, cmd = h.menu.Update(msg)
			return h, cmd
		}
	}

	if h.focus == focusInput {
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 20 {
		cw = 20
	}

	var sections []string

	sections = append(sections, theme.Title.Width(cw).Render("⚛ SciQuest"))
	sections = append(sections, theme.Subtitle.Width(cw).Render("Your AI-powered science tutor"))
	sections = append(sections, "")

	// Topic prompt card.
	inputLabel := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Topic")
	card := theme.Card.Width(cw).Render(inputLabel + "\n" + h.input.View())
	if h.focus == focusInput {
		card = theme.Card.Width(cw).BorderForeground(theme.Primary).
			Render(inputLabel + "\n" + h.input.View())
	}
	sections = append(sections, card)

	if h.inputErr != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).Width(cw).Render(h.inputErr))
	}

	// Difficulty picker.
	h.picker.Focused = h.focus == focusPicker
	pickerLabel := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Difficulty  ")
	sections = append(sections, pickerLabel+h.picker.View())
	sections = append(sections, "")

	// Recent topics + navigation.
	if len(h.recent) > 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Render("Recent topics"))
	}
	menuView := h.menu.View()
	if h.focus != focusMenu {
		menuView = lipgloss.NewStyle().Foreground(theme.TextDim).Render(menuView)
	}
	sections = append(sections, menuView)

	// Stats line.
	if h.stats != nil && h.stats.Lessons > 0 {
		statsLine := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render(statsSummary(h.stats))
		sections = append(sections, statsLine)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func statsSummary(s *store.LearningStats) string {
	parts := []string{fmt.Sprintf("%d %s", s.Lessons, plural(s.Lessons, "lesson", "lessons"))}
	if s.QuizzesTaken > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", s.QuizzesTaken, plural(s.QuizzesTaken, "quiz", "quizzes")))
	}
	if s.Topics > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", s.Topics, plural(s.Topics, "topic", "topics")))
	}
	return strings.Join(parts, "  ·  ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
