package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Theme carries the colors shared by every screen. The two palettes mirror
// the app's dark and light modes.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Subtle     lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
	Success    lipgloss.Color
}

func Dark() Theme {
	return Theme{
		Name:       "dark",
		Background: lipgloss.Color("#1e293b"),
		Surface:    lipgloss.Color("#334155"),
		Text:       lipgloss.Color("#ffffff"),
		Subtle:     lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#3b82f6"),
		Danger:     lipgloss.Color("#ff4757"),
		Success:    lipgloss.Color("#2ed573"),
	}
}

func Light() Theme {
	return Theme{
		Name:       "light",
		Background: lipgloss.Color("#f8fafc"),
		Surface:    lipgloss.Color("#e2e8f0"),
		Text:       lipgloss.Color("#1e293b"),
		Subtle:     lipgloss.Color("#64748b"),
		Accent:     lipgloss.Color("#2563eb"),
		Danger:     lipgloss.Color("#ff4757"),
		Success:    lipgloss.Color("#2ed573"),
	}
}

// Priority badge colors are shared across both themes.
var priorityColors = map[string]lipgloss.Color{
	"high":   lipgloss.Color("#ff4757"),
	"medium": lipgloss.Color("#ffa502"),
	"low":    lipgloss.Color("#2ed573"),
}

type AppData struct {
	Theme        Theme
	Header       string
	Body         string
	StatusLine   string
	Footer       string
	Notification string
}

func RenderApp(data AppData) string {
	th := data.Theme
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Accent)
	statusStyle := lipgloss.NewStyle().Foreground(th.Success)
	errorStyle := lipgloss.NewStyle().Foreground(th.Danger)
	panelStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(th.Surface).Padding(0, 1)
	footerStyle := lipgloss.NewStyle().Foreground(th.Subtle)

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		panelStyle.Width(72).Render(data.Body),
		status,
	}
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, th Theme) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if th.Name == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// PriorityBadge renders the colored [HIGH]/[MEDIUM]/[LOW] marker shown next
// to each task row.
func PriorityBadge(priority string) string {
	color, ok := priorityColors[strings.ToLower(priority)]
	if !ok {
		color = priorityColors["medium"]
	}
	badge := "[" + strings.ToUpper(priority) + "]"
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(badge)
}
