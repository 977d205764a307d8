package update

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/trizenhq/trizen/internal/lifecycle"
	"github.com/trizenhq/trizen/internal/model"
	"github.com/trizenhq/trizen/internal/prefs"
	"github.com/trizenhq/trizen/internal/tasks"
)

type Screen string

const (
	ScreenTasks     Screen = "Tasks"
	ScreenAdd       Screen = "Add"
	ScreenCompleted Screen = "Completed"
	ScreenDetail    Screen = "Detail"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks     string
	Add       string
	Completed string
	Theme     string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Deps wires the screens to the data layer. Everything the loop persists
// goes through these.
type Deps struct {
	Repo         *tasks.Repository
	Ctrl         *lifecycle.Controller
	Theme        *prefs.ThemeStore
	Logger       *slog.Logger
	PollInterval time.Duration
}

type Model struct {
	deps   Deps
	screen Screen

	// items is the full collection, newest first. Screens project their
	// visible subset from it.
	items []model.Task

	dark        bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	HelpVisible bool

	changes <-chan struct{}

	// Tasks screen
	cursor       int
	filter       tasks.FilterType
	priority     *model.Priority
	editing      *lifecycle.EditSession
	confirm      *lifecycle.DeleteRequest
	confirmTitle string

	// Add screen
	addFocus    string
	addPriority int
	addCategory int
	addErr      string

	// Completed screen
	completedCursor int

	// Detail screen. Tasks are handed over as flat string params, not as a
	// shared reference.
	detailParams map[string]string
	detailEdit   *lifecycle.EditSession
	detailErr    string
	returnScreen Screen

	Palette CommandPaletteState

	titleInput   textinput.Model
	textArea     textarea.Model
	editTitle    textinput.Model
	editText     textarea.Model
	commandInput textinput.Model
	notesArea    textarea.Model
	helpModel    help.Model
}

type TasksLoadedMsg struct {
	Tasks []model.Task
}

type StoreChangedMsg struct{}

type PollTickMsg struct {
	At time.Time
}

type SwitchScreenMsg struct {
	Screen Screen
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.PollInterval <= 0 {
		deps.PollInterval = time.Second
	}
	m := Model{
		deps:   deps,
		screen: ScreenTasks,
		items:  []model.Task{},
		filter: tasks.FilterAll,
		Keys: GlobalKeyMap{
			Tasks:     "1",
			Add:       "2",
			Completed: "3",
			Theme:     "t",
			Help:      "?",
			Quit:      "q",
		},
		addFocus:     "title",
		returnScreen: ScreenTasks,
	}
	if deps.Theme != nil {
		m.dark = deps.Theme.Load(context.Background())
	}
	if deps.Repo != nil {
		m.changes = deps.Repo.Subscribe()
	}
	m.initComponents()
	return m
}

func (m *Model) initComponents() {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = ""
	m.titleInput.Placeholder = "What needs to be done?"
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 48
	m.titleInput.Focus()

	m.textArea = textarea.New()
	m.textArea.SetWidth(54)
	m.textArea.SetHeight(5)
	m.textArea.ShowLineNumbers = false
	m.textArea.Placeholder = "Details (markdown)"

	m.editTitle = textinput.New()
	m.editTitle.Prompt = ""
	m.editTitle.CharLimit = 256
	m.editTitle.Width = 40

	m.editText = textarea.New()
	m.editText.SetWidth(48)
	m.editText.SetHeight(3)
	m.editText.ShowLineNumbers = false

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(8)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Task notes (markdown)"

	m.helpModel = help.New()
}

// visibleTasks projects the list the Tasks screen shows: the completion
// filter and the priority filter compose, order is preserved.
func (m Model) visibleTasks() []model.Task {
	return tasks.Filter(m.items, m.filter, m.priority)
}

func (m Model) completedTasks() []model.Task {
	return tasks.Completed(m.items)
}

func (m Model) selectedTask() (model.Task, bool) {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.cursor], true
}

func (m Model) selectedCompleted() (model.Task, bool) {
	done := m.completedTasks()
	if m.completedCursor < 0 || m.completedCursor >= len(done) {
		return model.Task{}, false
	}
	return done[m.completedCursor], true
}

func (m *Model) clampCursors() {
	if n := len(m.visibleTasks()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n := len(m.completedTasks()); m.completedCursor >= n {
		m.completedCursor = n - 1
	}
	if m.completedCursor < 0 {
		m.completedCursor = 0
	}
}

func isKnownScreen(s Screen) bool {
	switch s {
	case ScreenTasks, ScreenAdd, ScreenCompleted, ScreenDetail:
		return true
	default:
		return false
	}
}
