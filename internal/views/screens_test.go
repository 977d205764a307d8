package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Rendering tests force a color profile because the test environment has no
// terminal and lipgloss would otherwise strip every attribute.
func forceANSI(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestRowTitleStrikesThroughCompleted(t *testing.T) {
	forceANSI(t)

	done := rowTitle(TaskItemData{Title: "shipped", Completed: true})
	if !strings.Contains(done, "\x1b[9m") {
		t.Fatalf("expected strikethrough attribute, got %q", done)
	}
	if !strings.Contains(done, "shipped") {
		t.Fatalf("expected title text preserved, got %q", done)
	}

	open := rowTitle(TaskItemData{Title: "in flight", Completed: false})
	if open != "in flight" {
		t.Fatalf("expected pending title unstyled, got %q", open)
	}
}

func TestCompletedPanelStrikesThroughRows(t *testing.T) {
	forceANSI(t)

	out := RenderCompletedPanel(CompletedPanelData{
		Items: []TaskItemData{{ID: "1", Title: "archived", Completed: true, Priority: "low", Category: "Work"}},
	})
	if !strings.Contains(out, "\x1b[9m") {
		t.Fatalf("expected strikethrough attribute in panel, got %q", out)
	}
}

func TestTasksPanelShowsConfirmPrompt(t *testing.T) {
	out := RenderTasksPanel(TasksPanelData{
		Items:        []TaskItemData{{ID: "1", Title: "doomed"}},
		ConfirmID:    "1",
		ConfirmTitle: "doomed",
	})
	if !strings.Contains(out, `confirm: delete "doomed"?`) {
		t.Fatalf("expected confirmation prompt, got %q", out)
	}
}
