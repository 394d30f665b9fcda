package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmTeardown shows the teardown plan and waits for an explicit choice.
// Returns true only when the operator selects Proceed.
func ConfirmTeardown(plan []string) (bool, error) {
	m := newConfirmModel(plan)
	p := tea.NewProgram(m)
	out, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := out.(*confirmModel)
	if !ok {
		return false, nil
	}
	return final.confirmed, nil
}
