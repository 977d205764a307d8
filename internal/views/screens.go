package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var strikeStyle = lipgloss.NewStyle().Strikethrough(true)

// rowTitle renders a task title, struck through once the task is done.
func rowTitle(item TaskItemData) string {
	if item.Completed {
		return strikeStyle.Render(item.Title)
	}
	return item.Title
}

type TaskItemData struct {
	ID        string
	Title     string
	Completed bool
	Priority  string
	Category  string
	CreatedAt string
}

type TasksPanelData struct {
	Items         []TaskItemData
	SelectedID    string
	FilterLabel   string
	PriorityLabel string
	PendingCount  int
	DoneCount     int
	EditingID     string
	EditorView    string
	ConfirmID     string
	ConfirmTitle  string
}

type AddPanelData struct {
	TitleView    string
	TextView     string
	Priority     string
	Category     string
	FocusedField string
	ErrorText    string
}

type CompletedPanelData struct {
	Items        []TaskItemData
	SelectedID   string
	Empty        bool
	ConfirmID    string
	ConfirmTitle string
}

type DetailPanelData struct {
	Item         TaskItemData
	Text         string
	MarkdownView string
	Editing      bool
	EditorView   string
	ErrorText    string
	ConfirmID    string
	ConfirmTitle string
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(fmt.Sprintf("filter: %s | priority: %s | pending: %d | done: %d\n",
		data.FilterLabel, data.PriorityLabel, data.PendingCount, data.DoneCount))
	b.WriteString("actions: [j/k]move [space]toggle [e]edit [d]delete [enter]detail [/]command\n")

	if len(data.Items) == 0 {
		b.WriteString("(no tasks yet, press [2] to add one)")
		return strings.TrimSpace(b.String())
	}

	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		if data.EditingID == item.ID {
			b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, check, data.EditorView))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s (%s)\n", cursor, check, PriorityBadge(item.Priority), rowTitle(item), item.Category))
	}

	if data.ConfirmID != "" {
		b.WriteString(fmt.Sprintf("\nconfirm: delete %q? [y]es [n]o", data.ConfirmTitle))
	}
	return strings.TrimSpace(b.String())
}

func RenderAddPanel(data AddPanelData) string {
	var b strings.Builder
	b.WriteString("add task:\n")
	b.WriteString("actions: [tab]next-field [enter]save [ctrl+l]clear [esc]back\n")
	b.WriteString(fieldLabel("title", data.FocusedField) + data.TitleView + "\n")
	b.WriteString(fieldLabel("text", data.FocusedField) + data.TextView + "\n")
	b.WriteString(fieldLabel("priority", data.FocusedField) + PriorityBadge(data.Priority) + "\n")
	b.WriteString(fieldLabel("category", data.FocusedField) + data.Category + "\n")
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimSpace(b.String())
}

func RenderCompletedPanel(data CompletedPanelData) string {
	var b strings.Builder
	b.WriteString("completed:\n")
	b.WriteString("actions: [j/k]move [space]mark-incomplete [e]edit [d]delete [enter]detail\n")
	if data.Empty || len(data.Items) == 0 {
		b.WriteString("(nothing completed yet)")
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s [x] %s %s (%s)\n", cursor, PriorityBadge(item.Priority), rowTitle(item), item.Category))
	}
	if data.ConfirmID != "" {
		b.WriteString(fmt.Sprintf("\nconfirm: delete %q? [y]es [n]o", data.ConfirmTitle))
	}
	return strings.TrimSpace(b.String())
}

func RenderDetailPanel(data DetailPanelData) string {
	var b strings.Builder
	b.WriteString("task detail:\n")
	b.WriteString("actions: [e]edit [space]toggle [d]delete [esc]back\n")
	b.WriteString(fmt.Sprintf("title: %s\n", rowTitle(data.Item)))
	b.WriteString(fmt.Sprintf("priority: %s | category: %s\n", data.Item.Priority, data.Item.Category))
	b.WriteString(fmt.Sprintf("created: %s\n", data.Item.CreatedAt))
	status := "pending"
	if data.Item.Completed {
		status = "completed"
	}
	b.WriteString(fmt.Sprintf("status: %s\n", status))

	if data.Editing {
		b.WriteString("\nnotes-editor:\n")
		b.WriteString(data.EditorView + "\n")
		if data.ErrorText != "" {
			b.WriteString("error: " + data.ErrorText)
		}
		return strings.TrimSpace(b.String())
	}

	b.WriteString("\nnotes:\n")
	if strings.TrimSpace(data.MarkdownView) != "" {
		b.WriteString(data.MarkdownView)
	} else if strings.TrimSpace(data.Text) != "" {
		b.WriteString(data.Text)
	} else {
		b.WriteString("(no notes)")
	}
	if data.ConfirmID != "" {
		b.WriteString(fmt.Sprintf("\n\nconfirm: delete %q? [y]es [n]o", data.ConfirmTitle))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func fieldLabel(name, focused string) string {
	if name == focused {
		return "> " + name + ": "
	}
	return "  " + name + ": "
}
