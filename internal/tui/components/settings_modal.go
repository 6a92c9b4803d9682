package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// ThemeOption is one entry of the settings modal
type ThemeOption struct {
	Name  string
	Label string
}

// ThemeOptions returns the selectable themes
func ThemeOptions() []ThemeOption {
	return []ThemeOption{
		{Name: styles.Day.Name, Label: "Day"},
		{Name: styles.Night.Name, Label: "Night"},
	}
}

// SettingsModal is a small popup for choosing the theme
type SettingsModal struct {
	visible bool
	options []ThemeOption
	cursor  int
	active  string
}

// NewSettingsModal creates a new settings modal
func NewSettingsModal() SettingsModal {
	return SettingsModal{options: ThemeOptions()}
}

// Show displays the modal with the cursor on the active theme
func (m *SettingsModal) Show(active string) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt.Name == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SettingsModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SettingsModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, theme).
// A non-empty theme means the user confirmed a choice.
func (m *SettingsModal) HandleKey(key string) (handled bool, theme string) {
	if !m.visible {
		return false, ""
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", " ":
		m.visible = false
		return true, m.options[m.cursor].Name
	case "esc", "t", "q":
		m.visible = false
	}

	return true, "" // consume all keys when visible
}

// View renders the settings modal
func (m SettingsModal) View() string {
	if !m.visible {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		prefix := "  "
		if opt.Name == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+opt.Label, 20)

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.Current.Text).
				Background(styles.Current.Highlight).
				Render(text))
		case opt.Name == m.active:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, styles.SubtitleStyle.Render(text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Current.Accent).
		Background(styles.Current.Surface).
		Padding(0, 1).
		Render(styles.ModalTitleStyle.Render("Theme") + "\n" + strings.Join(lines, "\n"))
}
