package update

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/lifecycle"
	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/views"
)

// paramEditMode rides along with the task params when a screen opens the
// detail view straight into editing, the same flat-string contract the task
// fields use.
const paramEditMode = "editMode"

// openDetail hands the task over as flat string params and switches to the
// detail screen, optionally already in edit mode.
func (m *Model) openDetail(task model.Task, from Screen, editMode bool) {
	m.detailParams = task.Params()
	m.detailParams[paramEditMode] = strconv.FormatBool(editMode)
	m.returnScreen = from
	m.screen = ScreenDetail
	m.detailErr = ""
	m.detailEdit = nil
	m.notesArea.Blur()
	if m.detailParams[paramEditMode] == "true" {
		m.detailEdit = lifecycle.BeginEdit(task, nil)
		m.notesArea.SetValue(task.Text)
		m.notesArea.Focus()
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task := model.TaskFromParams(m.detailParams)
	switch msg.String() {
	case "esc":
		m.screen = m.returnScreen
		if m.returnScreen == ScreenCompleted {
			return m, tea.Batch(m.loadTasksCmd(), pollCmd(m.deps.PollInterval))
		}
		return m, m.loadTasksCmd()
	case " ", "space":
		m.deps.Ctrl.ToggleComplete(context.Background(), task.ID)
		m.refreshDetailParams(task.ID)
		return m, nil
	case "d":
		req := m.deps.Ctrl.RequestDelete(task.ID)
		m.confirm = &req
		m.confirmTitle = task.Title
		return m, nil
	case "e":
		m.detailEdit = lifecycle.BeginEdit(task, nil)
		m.detailErr = ""
		m.notesArea.SetValue(task.Text)
		m.notesArea.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) handleDetailEditKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.detailEdit.Cancel()
		m.detailEdit = nil
		m.notesArea.Blur()
		m.Status = StatusBar{Text: "edit cancelled", IsError: false}
		return m
	case "ctrl+s":
		m.detailEdit.Draft.Text = m.notesArea.Value()
		if err := m.detailEdit.Save(context.Background(), m.deps.Ctrl); err != nil {
			m.detailErr = err.Error()
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		id := m.detailEdit.TaskID
		m.detailEdit = nil
		m.notesArea.Blur()
		m.refreshDetailParams(id)
		m.Status = StatusBar{Text: "task updated", IsError: false}
		return m
	}
	m.notesArea, _ = m.notesArea.Update(msg)
	return m
}

// refreshDetailParams re-reads the task after a mutation so the detail view
// reflects the persisted state, staying on the flat-params contract.
func (m *Model) refreshDetailParams(id string) {
	m.items = m.deps.Repo.Load(context.Background())
	for _, t := range m.items {
		if t.ID == id {
			mode := m.detailParams[paramEditMode]
			m.detailParams = t.Params()
			m.detailParams[paramEditMode] = mode
			return
		}
	}
}

func (m Model) renderDetailScreen() string {
	task := model.TaskFromParams(m.detailParams)
	item := taskItemData(task)
	if task.CreatedAt.IsZero() {
		item.CreatedAt = "(unknown)"
	}
	data := views.DetailPanelData{
		Item: item,
		Text: task.Text,
	}
	if m.confirm != nil {
		data.ConfirmID = m.confirm.TaskID
		data.ConfirmTitle = m.confirmTitle
	}
	if m.detailEdit != nil {
		data.Editing = true
		data.EditorView = m.notesArea.View()
		data.ErrorText = m.detailErr
		return views.RenderDetailPanel(data)
	}
	data.MarkdownView = views.RenderMarkdown(task.Text, m.theme())
	return views.RenderDetailPanel(data)
}
