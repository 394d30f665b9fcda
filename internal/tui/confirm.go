package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	plan      []string
	cursor    int
	confirmed bool
}

func newConfirmModel(plan []string) *confirmModel {
	// Cancel is the default selection for a destructive plan.
	return &confirmModel{plan: plan, cursor: 1}
}

func (m *confirmModel) Init() tea.Cmd {
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) || isEsc(msg) {
			m.confirmed = false
			return m, tea.Quit
		}
		if (isLeft(msg) || isUp(msg)) && m.cursor > 0 {
			m.cursor--
		}
		if (isRight(msg) || isDown(msg)) && m.cursor < 1 {
			m.cursor++
		}
		if isEnter(msg) {
			m.confirmed = m.cursor == 0
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Confirm Teardown"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("  This run will"))
	b.WriteString("\n")
	for _, item := range m.plan {
		b.WriteString("  " + warningStyle.Render("-") + " " + normalStyle.Render(item))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	buttons := []string{"Proceed", "Cancel"}
	for i, btn := range buttons {
		if i == m.cursor {
			b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
		} else {
			b.WriteString("  " + normalStyle.Render("["+btn+"]"))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  left/right: navigate  enter: select  esc: abort"))
	return b.String()
}
