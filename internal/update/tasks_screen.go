package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/lifecycle"
	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/tasks"
	"github.com/trizenhq/trizen/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "f":
		if m.filter == tasks.FilterAll {
			m.filter = tasks.FilterPending
		} else {
			m.filter = tasks.FilterAll
		}
		m.clampCursors()
		m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", m.filter), IsError: false}
		return m, nil
	case "p":
		m.cyclePriorityFilter()
		m.clampCursors()
		m.Status = StatusBar{Text: fmt.Sprintf("priority filter: %s", m.priorityLabel()), IsError: false}
		return m, nil
	case " ", "space":
		if task, ok := m.selectedTask(); ok {
			m.deps.Ctrl.ToggleComplete(context.Background(), task.ID)
			return m, m.loadTasksCmd()
		}
		return m, nil
	case "e":
		if task, ok := m.selectedTask(); ok {
			m.editing = lifecycle.BeginEdit(task, lifecycle.PolicyTitleAndText)
			m.editTitle.SetValue(task.Title)
			m.editText.SetValue(task.Text)
			m.editTitle.Focus()
			m.editText.Blur()
		}
		return m, nil
	case "d":
		if task, ok := m.selectedTask(); ok {
			req := m.deps.Ctrl.RequestDelete(task.ID)
			m.confirm = &req
			m.confirmTitle = task.Title
		}
		return m, nil
	case "enter":
		if task, ok := m.selectedTask(); ok {
			m.openDetail(task, ScreenTasks, false)
		}
		return m, nil
	}
	return m, nil
}

// handleConfirmKey resolves a pending two-step delete. Anything other than an
// explicit yes cancels it. A confirmed delete on the detail screen navigates
// back to wherever the task was opened from.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := *m.confirm
	m.confirm = nil
	m.confirmTitle = ""
	switch msg.String() {
	case "y", "Y":
		m.deps.Ctrl.ConfirmDelete(context.Background(), req.Token)
		m.items = m.deps.Repo.Load(context.Background())
		m.clampCursors()
		m.Status = StatusBar{Text: "task deleted", IsError: false}
		if m.screen == ScreenDetail {
			m.screen = m.returnScreen
			if m.returnScreen == ScreenCompleted {
				return m, pollCmd(m.deps.PollInterval)
			}
		}
	default:
		m.deps.Ctrl.CancelDelete(req.Token)
		m.Status = StatusBar{Text: "delete cancelled", IsError: false}
	}
	return m, nil
}

func (m Model) handleInlineEditKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.editing.Cancel()
		m.editing = nil
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
		return m
	case "tab":
		if m.editTitle.Focused() {
			m.editTitle.Blur()
			m.editText.Focus()
		} else {
			m.editText.Blur()
			m.editTitle.Focus()
		}
		return m
	case "enter":
		m.editing.Draft.Title = m.editTitle.Value()
		m.editing.Draft.Text = m.editText.Value()
		if err := m.editing.Save(context.Background(), m.deps.Ctrl); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.editing = nil
		m.items = m.deps.Repo.Load(context.Background())
		m.Status = StatusBar{Text: "task updated", IsError: false}
		return m
	}

	if m.editTitle.Focused() {
		m.editTitle, _ = m.editTitle.Update(msg)
	} else {
		m.editText, _ = m.editText.Update(msg)
	}
	return m
}

func (m *Model) cyclePriorityFilter() {
	switch {
	case m.priority == nil:
		p := model.PriorityHigh
		m.priority = &p
	case *m.priority == model.PriorityHigh:
		p := model.PriorityMedium
		m.priority = &p
	case *m.priority == model.PriorityMedium:
		p := model.PriorityLow
		m.priority = &p
	default:
		m.priority = nil
	}
}

func (m Model) priorityLabel() string {
	if m.priority == nil {
		return "any"
	}
	return string(*m.priority)
}

func (m Model) renderTasksScreen() string {
	visible := m.visibleTasks()
	items := make([]views.TaskItemData, 0, len(visible))
	selectedID := ""
	for i, t := range visible {
		if i == m.cursor {
			selectedID = t.ID
		}
		items = append(items, taskItemData(t))
	}

	data := views.TasksPanelData{
		Items:         items,
		SelectedID:    selectedID,
		FilterLabel:   string(m.filter),
		PriorityLabel: m.priorityLabel(),
	}
	counts := tasks.Count(m.items)
	data.PendingCount = counts.Pending
	data.DoneCount = counts.Completed

	if m.editing != nil {
		data.EditingID = m.editing.TaskID
		data.EditorView = m.editTitle.View() + " / " + m.editText.View()
	}
	if m.confirm != nil {
		data.ConfirmID = m.confirm.TaskID
		data.ConfirmTitle = m.confirmTitle
	}
	return views.RenderTasksPanel(data)
}

func taskItemData(t model.Task) views.TaskItemData {
	return views.TaskItemData{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  string(t.Priority),
		Category:  t.Category,
		CreatedAt: t.CreatedAt.Format("2006-01-02 15:04"),
	}
}
