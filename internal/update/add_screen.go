package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/lifecycle"
	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/views"
)

var addPriorities = []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

const defaultPriorityIndex = 1 // medium

// captureAddKey reports whether a key on the Add screen belongs to the form.
// Everything except the hard interrupt is form input, so titles may contain
// any character including the global shortcut keys.
func (m Model) captureAddKey(key string) bool {
	return key != "ctrl+c"
}

func (m *Model) resetAddForm() {
	m.titleInput.SetValue("")
	m.textArea.SetValue("")
	m.addPriority = defaultPriorityIndex
	m.addCategory = 0
	m.addFocus = "title"
	m.addErr = ""
	m.titleInput.Focus()
	m.textArea.Blur()
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = ScreenTasks
		return m, m.loadTasksCmd()
	case "tab":
		m.focusNextAddField()
		return m, nil
	case "shift+tab":
		m.focusPrevAddField()
		return m, nil
	case "ctrl+l":
		m.resetAddForm()
		m.Status = StatusBar{Text: "form cleared", IsError: false}
		return m, nil
	case "enter":
		if m.addFocus != "text" {
			return m.submitAddForm()
		}
	}

	switch m.addFocus {
	case "title":
		m.titleInput, _ = m.titleInput.Update(msg)
	case "text":
		m.textArea, _ = m.textArea.Update(msg)
	case "priority":
		switch msg.String() {
		case "j", "l", "down", "right", " ":
			m.addPriority = (m.addPriority + 1) % len(addPriorities)
		case "k", "h", "up", "left":
			m.addPriority = (m.addPriority + len(addPriorities) - 1) % len(addPriorities)
		}
	case "category":
		switch msg.String() {
		case "j", "l", "down", "right", " ":
			m.addCategory = (m.addCategory + 1) % len(model.Categories)
		case "k", "h", "up", "left":
			m.addCategory = (m.addCategory + len(model.Categories) - 1) % len(model.Categories)
		}
	}
	return m, nil
}

func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	in := lifecycle.CreateInput{
		Title:    m.titleInput.Value(),
		Text:     m.textArea.Value(),
		Priority: addPriorities[m.addPriority],
		Category: model.Categories[m.addCategory],
	}
	task, err := m.deps.Ctrl.Create(context.Background(), in, lifecycle.PolicyTitleOnly)
	if err != nil {
		m.addErr = err.Error()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.resetAddForm()
	m.screen = ScreenTasks
	m.cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("task added: %s", task.Title), IsError: false}
	return m, m.loadTasksCmd()
}

func (m *Model) focusNextAddField() {
	switch m.addFocus {
	case "title":
		m.addFocus = "text"
		m.titleInput.Blur()
		m.textArea.Focus()
	case "text":
		m.addFocus = "priority"
		m.textArea.Blur()
	case "priority":
		m.addFocus = "category"
	default:
		m.addFocus = "title"
		m.titleInput.Focus()
	}
}

func (m *Model) focusPrevAddField() {
	switch m.addFocus {
	case "title":
		m.addFocus = "category"
		m.titleInput.Blur()
	case "text":
		m.addFocus = "title"
		m.textArea.Blur()
		m.titleInput.Focus()
	case "priority":
		m.addFocus = "text"
		m.textArea.Focus()
	default:
		m.addFocus = "priority"
	}
}

func (m Model) renderAddScreen() string {
	return views.RenderAddPanel(views.AddPanelData{
		TitleView:    m.titleInput.View(),
		TextView:     m.textArea.View(),
		Priority:     string(addPriorities[m.addPriority]),
		Category:     model.Categories[m.addCategory],
		FocusedField: m.addFocus,
		ErrorText:    m.addErr,
	})
}
