package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/router"
	"github.com/abhisek/sciquest/internal/screen"
	"github.com/abhisek/sciquest/internal/screens/home"
	"github.com/abhisek/sciquest/internal/screens/welcome"
	"github.com/abhisek/sciquest/internal/speech"
	"github.com/abhisek/sciquest/internal/store"
	"github.com/abhisek/sciquest/internal/ui/layout"
)

// Options carries the wired services for the TUI.
type Options struct {
	ExplainService *explain.Service
	QuizGenerator  *quiz.Generator
	EventRepo      store.EventRepo
	Speaker        *speech.Speaker

	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	speaker *speech.Speaker
	width   int
	height  int
}

// newAppModel creates an AppModel starting on the splash (or home) screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.ExplainService, opts.QuizGenerator, opts.EventRepo, opts.Speaker)
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router:  router.New(initial),
		speaker: opts.Speaker,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.speaker != nil {
				m.speaker.Stop()
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash screen draws the whole frame itself.
	if _, isSplash := active.(*welcome.WelcomeScreen); isSplash {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	difficulty := ""
	if dp, ok := active.(screen.DifficultyProvider); ok {
		difficulty = dp.Difficulty().Label()
	}
	speaking := m.speaker != nil && m.speaker.Speaking()

	header := layout.RenderHeader(title, difficulty, speaking, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
