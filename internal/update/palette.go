package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/commands"
	"github.com/trizenhq/trizen/internal/lifecycle"
	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/tasks"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	m.commandInput, _ = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, nil
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := m.deps.Ctrl.Create(context.Background(), lifecycle.CreateInput{Title: a.Title}, lifecycle.PolicyTitleOnly)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("task added: %s", task.Title)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.filter = tasks.FilterType(f.Which)
			m.clampCursors()
			return commands.Result{Message: fmt.Sprintf("filter: %s", f.Which)}, nil
		},
		Priority: func(p commands.PriorityArgs) (commands.Result, error) {
			if p.Level == "clear" {
				m.priority = nil
				m.clampCursors()
				return commands.Result{Message: "priority filter cleared"}, nil
			}
			level := model.Priority(p.Level)
			m.priority = &level
			m.clampCursors()
			return commands.Result{Message: fmt.Sprintf("priority filter: %s", p.Level)}, nil
		},
		Theme: func() (commands.Result, error) {
			if m.deps.Theme != nil {
				m.dark = m.deps.Theme.Toggle(context.Background())
			}
			return commands.Result{Message: fmt.Sprintf("theme: %s", m.themeName())}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, m.loadTasksCmd()
}
