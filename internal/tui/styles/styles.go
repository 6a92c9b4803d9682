package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Palette is the set of colors a theme is built from
type Palette struct {
	Name      string
	Accent    lipgloss.Color
	Surface   lipgloss.Color
	Highlight lipgloss.Color
	Muted     lipgloss.Color
	Subtle    lipgloss.Color
	Text      lipgloss.Color
	Error     lipgloss.Color
}

// Night swaps the dark color into the background, Day into the foreground
var (
	Night = Palette{
		Name:      "night",
		Accent:    lipgloss.Color("#E5A00D"),
		Surface:   lipgloss.Color("#1F2937"),
		Highlight: lipgloss.Color("#374151"),
		Muted:     lipgloss.Color("#6B7280"),
		Subtle:    lipgloss.Color("#9CA3AF"),
		Text:      lipgloss.Color("#F9FAFB"),
		Error:     lipgloss.Color("#EF4444"),
	}

	Day = Palette{
		Name:      "day",
		Accent:    lipgloss.Color("#B45309"),
		Surface:   lipgloss.Color("#F9FAFB"),
		Highlight: lipgloss.Color("#E5E7EB"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Subtle:    lipgloss.Color("#4B5563"),
		Text:      lipgloss.Color("#0A0A14"),
		Error:     lipgloss.Color("#B91C1C"),
	}
)

// Current is the palette the styles below were last built from
var Current Palette

// Styles. Rebuilt by Apply; read them after a theme change, never cache.
var (
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style

	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	DimStyle       lipgloss.Style
	AccentStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	HighlightStyle lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style

	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style

	DimBadgeStyle lipgloss.Style

	FilterPromptStyle lipgloss.Style
	FilterStyle       lipgloss.Style
)

func init() {
	Apply(Night)
}

// Apply rebuilds every style from p
func Apply(p Palette) {
	Current = p

	ActiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)

	InactiveBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted)

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Subtle)

	DimStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	AccentStyle = lipgloss.NewStyle().
		Foreground(p.Accent)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	HighlightStyle = lipgloss.NewStyle().
		Foreground(p.Surface).
		Background(p.Accent).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2).
		Background(p.Surface)

	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		MarginBottom(1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(p.Accent)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	DimBadgeStyle = lipgloss.NewStyle().
		Foreground(p.Subtle).
		Background(p.Highlight).
		Padding(0, 1)

	FilterPromptStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	FilterStyle = lipgloss.NewStyle().
		Foreground(p.Text)
}

// ForTheme picks the palette for a configured theme name. "auto" follows
// the terminal background.
func ForTheme(theme string, darkBackground bool) Palette {
	switch theme {
	case Day.Name:
		return Day
	case Night.Name:
		return Night
	}
	if darkBackground {
		return Night
	}
	return Day
}

// Truncate shortens s to width display cells with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Pad pads or cuts s to exactly width display cells
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// RowPart is one segment of a list row with an optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// RenderListRow renders a row with a uniform background when selected.
// Each part is styled on its own so ANSI resets do not break the background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := Current.Highlight
	defaultFg := Current.Subtle
	selectedFg := Current.Text

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		switch {
		case part.Foreground != nil:
			style = style.Foreground(*part.Foreground)
		case selected:
			style = style.Foreground(selectedFg)
		default:
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		result += style.Render(part.Text)
		visibleLen += lipgloss.Width(part.Text)
	}

	// 2 cells of margin, one each side
	if pad := width - visibleLen - 2; pad > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(runewidth.FillRight("", pad))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}
