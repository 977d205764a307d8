package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.screenBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return fmt.Sprintf("help:\n%s screen:\n%s\n%s",
		strings.ToLower(string(m.screen)),
		strings.Join(plain, "\n"),
		m.helpModel.View(helpKeyMap{
			short: m.helpBindings(),
			full:  [][]key.Binding{m.helpBindings()},
		}),
	)
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Tasks, Action: "switch to Tasks"},
		{Key: m.Keys.Add, Action: "switch to Add"},
		{Key: m.Keys.Completed, Action: "switch to Completed"},
		{Key: m.Keys.Theme, Action: "toggle theme"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	switch m.screen {
	case ScreenTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "toggle complete"},
			{Key: "e", Action: "edit inline"},
			{Key: "d", Action: "delete (with confirm)"},
			{Key: "f/p", Action: "cycle filter / priority filter"},
			{Key: "enter", Action: "open detail"},
		}
	case ScreenAdd:
		return []KeyBinding{
			{Key: "tab", Action: "next field"},
			{Key: "enter", Action: "save task"},
			{Key: "ctrl+l", Action: "clear form"},
			{Key: "esc", Action: "back to tasks"},
		}
	case ScreenCompleted:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "space", Action: "mark as incomplete"},
			{Key: "e", Action: "edit notes"},
			{Key: "d", Action: "delete (with confirm)"},
			{Key: "enter", Action: "open detail"},
		}
	case ScreenDetail:
		return []KeyBinding{
			{Key: "e", Action: "edit notes"},
			{Key: "space", Action: "toggle complete"},
			{Key: "d", Action: "delete (with confirm)"},
			{Key: "esc", Action: "back"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.screenBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.screenBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
