package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trizenhq/trizen/internal/tasks"
	"github.com/trizenhq/trizen/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), waitForChangeCmd(m.changes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.confirm != nil {
			return m.handleConfirmKey(typed)
		}
		if m.screen == ScreenTasks && m.editing != nil {
			return m.handleInlineEditKey(typed), nil
		}
		if m.screen == ScreenDetail && m.detailEdit != nil {
			return m.handleDetailEditKey(typed), nil
		}
		if m.screen == ScreenAdd && m.captureAddKey(typed.String()) {
			return m.handleAddKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			return m, nil
		case m.Keys.Tasks:
			m.screen = ScreenTasks
			return m, m.loadTasksCmd()
		case m.Keys.Add:
			m.screen = ScreenAdd
			m.resetAddForm()
			return m, nil
		case m.Keys.Completed:
			// Re-pressing must not stack another tick chain on the one
			// already running.
			if m.screen == ScreenCompleted {
				return m, m.loadTasksCmd()
			}
			m.screen = ScreenCompleted
			return m, tea.Batch(m.loadTasksCmd(), pollCmd(m.deps.PollInterval))
		case m.Keys.Theme:
			if m.deps.Theme != nil {
				m.dark = m.deps.Theme.Toggle(context.Background())
				m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.themeName()), IsError: false}
			}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.screen {
		case ScreenTasks:
			return m.handleTasksKey(typed)
		case ScreenAdd:
			return m.handleAddKey(typed)
		case ScreenCompleted:
			return m.handleCompletedKey(typed)
		case ScreenDetail:
			return m.handleDetailKey(typed)
		}
	case TasksLoadedMsg:
		m.items = typed.Tasks
		m.clampCursors()
		return m, nil
	case StoreChangedMsg:
		return m, tea.Batch(m.loadTasksCmd(), waitForChangeCmd(m.changes))
	case PollTickMsg:
		if m.screen != ScreenCompleted {
			return m, nil
		}
		return m, tea.Batch(m.loadTasksCmd(), pollCmd(m.deps.PollInterval))
	case SwitchScreenMsg:
		if isKnownScreen(typed.Screen) {
			alreadyPolling := m.screen == ScreenCompleted
			m.screen = typed.Screen
			if typed.Screen == ScreenAdd {
				m.resetAddForm()
			}
			if typed.Screen == ScreenCompleted && !alreadyPolling {
				return m, tea.Batch(m.loadTasksCmd(), pollCmd(m.deps.PollInterval))
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body := ""
	switch m.screen {
	case ScreenTasks:
		body = m.renderTasksScreen()
	case ScreenAdd:
		body = m.renderAddScreen()
	case ScreenCompleted:
		body = m.renderCompletedScreen()
	case ScreenDetail:
		body = m.renderDetailScreen()
	}
	if m.HelpVisible {
		body += "\n\n" + m.renderHelpView()
	}

	notification := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)

	counts := tasks.Count(m.items)
	return views.RenderApp(views.AppData{
		Theme:        m.theme(),
		Header:       fmt.Sprintf("trizen | screen: %s | pending: %d | done: %d", m.screen, counts.Pending, counts.Completed),
		Body:         body,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s tasks | %s add | %s completed | %s theme | / cmd | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Add, m.Keys.Completed, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) theme() views.Theme {
	if m.dark {
		return views.Dark()
	}
	return views.Light()
}

func (m Model) themeName() string {
	return m.theme().Name
}

func (m Model) loadTasksCmd() tea.Cmd {
	repo := m.deps.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		return TasksLoadedMsg{Tasks: repo.Load(context.Background())}
	}
}

func waitForChangeCmd(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return StoreChangedMsg{}
	}
}

func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return PollTickMsg{At: at}
	})
}
