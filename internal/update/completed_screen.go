package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/views"
)

func (m Model) handleCompletedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.completedCursor < len(m.completedTasks())-1 {
			m.completedCursor++
		}
		return m, nil
	case "k", "up":
		if m.completedCursor > 0 {
			m.completedCursor--
		}
		return m, nil
	case " ", "space":
		if task, ok := m.selectedCompleted(); ok {
			m.deps.Ctrl.ToggleComplete(context.Background(), task.ID)
			m.Status = StatusBar{Text: "marked as incomplete", IsError: false}
			return m, m.loadTasksCmd()
		}
		return m, nil
	case "d":
		if task, ok := m.selectedCompleted(); ok {
			req := m.deps.Ctrl.RequestDelete(task.ID)
			m.confirm = &req
			m.confirmTitle = task.Title
		}
		return m, nil
	case "e":
		// No inline editor here, so editing goes through the detail
		// screen with the editor already open.
		if task, ok := m.selectedCompleted(); ok {
			m.openDetail(task, ScreenCompleted, true)
		}
		return m, nil
	case "enter":
		if task, ok := m.selectedCompleted(); ok {
			m.openDetail(task, ScreenCompleted, false)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) renderCompletedScreen() string {
	done := m.completedTasks()
	items := make([]views.TaskItemData, 0, len(done))
	selectedID := ""
	for i, t := range done {
		if i == m.completedCursor {
			selectedID = t.ID
		}
		items = append(items, taskItemData(t))
	}
	data := views.CompletedPanelData{
		Items:      items,
		SelectedID: selectedID,
		Empty:      len(items) == 0,
	}
	if m.confirm != nil {
		data.ConfirmID = m.confirm.TaskID
		data.ConfirmTitle = m.confirmTitle
	}
	return views.RenderCompletedPanel(data)
}
