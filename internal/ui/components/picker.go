package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sciquest/internal/ui/theme"
)

// Picker is a horizontal option selector, used for the difficulty choice.
type Picker struct {
	Options  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker with the given options.
func NewPicker(options []string) Picker {
	return Picker{Options: options}
}

// Update handles left/right navigation when focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// View renders the picker as a row of pills.
func (p Picker) View() string {
	parts := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		switch {
		case i == p.Selected && p.Focused:
			parts = append(parts, theme.ButtonActive.Render(opt))
		case i == p.Selected:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Padding(0, 2).
				Render(opt))
		default:
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Padding(0, 2).
				Render(opt))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
