package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// pickerRows is how many options a picker shows while focused
const pickerRows = 5

// Option is one choice of an OptionPicker
type Option struct {
	ID   string
	Name string
}

// OptionsFromTable builds picker options: the "any" option first, then the
// table in its own order
func OptionsFromTable(anyLabel string, table domain.NameTable) []Option {
	entries := table.Entries()
	opts := make([]Option, 0, len(entries)+1)
	opts = append(opts, Option{ID: domain.Any, Name: anyLabel})
	for _, e := range entries {
		opts = append(opts, Option{ID: e.ID, Name: e.Name})
	}
	return opts
}

// optionSource adapts options for fuzzy.FindFrom
type optionSource []Option

func (s optionSource) String(i int) string { return s[i].Name }
func (s optionSource) Len() int            { return len(s) }

// OptionPicker is a single-choice dropdown narrowed by typing
type OptionPicker struct {
	label   string
	options []Option

	query    string
	visible  []int // indices into options, in display order
	cursor   int   // index into visible
	selected int   // index into options
	focused  bool
}

// NewOptionPicker creates a picker with the first option selected
func NewOptionPicker(label string, options []Option) OptionPicker {
	p := OptionPicker{label: label, options: options}
	p.narrow()
	return p
}

// Select chooses the option with id, falling back to the first option
func (p *OptionPicker) Select(id string) {
	p.selected = 0
	for i, o := range p.options {
		if o.ID == id {
			p.selected = i
			break
		}
	}
	p.query = ""
	p.narrow()
}

// Value returns the selected option id
func (p OptionPicker) Value() string {
	if len(p.options) == 0 {
		return domain.Any
	}
	return p.options[p.selected].ID
}

// SelectedName returns the selected option's display name
func (p OptionPicker) SelectedName() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.selected].Name
}

// Query returns the narrowing text typed so far
func (p OptionPicker) Query() string { return p.query }

// Visible returns the options currently offered, in display order
func (p OptionPicker) Visible() []Option {
	out := make([]Option, len(p.visible))
	for i, idx := range p.visible {
		out[i] = p.options[idx]
	}
	return out
}

func (p *OptionPicker) Focus() { p.focused = true }

// Blur drops focus and any narrowing text
func (p *OptionPicker) Blur() {
	p.focused = false
	p.query = ""
	p.narrow()
}

// Update handles keys while focused. Moving the cursor selects.
func (p OptionPicker) Update(msg tea.Msg) OptionPicker {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p
	}

	switch {
	case key.Matches(keyMsg, SearchKeys.Down):
		if p.cursor < len(p.visible)-1 {
			p.cursor++
			p.selected = p.visible[p.cursor]
		}
	case key.Matches(keyMsg, SearchKeys.Up):
		if p.cursor > 0 {
			p.cursor--
			p.selected = p.visible[p.cursor]
		}
	case keyMsg.Type == tea.KeyBackspace:
		if r := []rune(p.query); len(r) > 0 {
			p.query = string(r[:len(r)-1])
			p.narrow()
		}
	case keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace:
		p.query += string(keyMsg.Runes)
		if keyMsg.Type == tea.KeySpace && len(keyMsg.Runes) == 0 {
			p.query += " "
		}
		p.narrow()
	}
	return p
}

// narrow recomputes the visible options for the current query and keeps
// the selection on the best match
func (p *OptionPicker) narrow() {
	p.visible = make([]int, 0, len(p.options))
	p.cursor = 0

	if strings.TrimSpace(p.query) == "" {
		for i := range p.options {
			p.visible = append(p.visible, i)
			if i == p.selected {
				p.cursor = len(p.visible) - 1
			}
		}
		return
	}

	for _, m := range fuzzy.FindFrom(p.query, optionSource(p.options)) {
		p.visible = append(p.visible, m.Index)
	}
	if len(p.visible) > 0 {
		p.selected = p.visible[0]
	}
}

// View renders the picker: a single line when blurred, a short list when
// focused
func (p OptionPicker) View(width int) string {
	labelStyle := styles.DimStyle
	if p.focused {
		labelStyle = styles.FilterPromptStyle
	}
	line := labelStyle.Render(p.label+": ") + styles.FilterStyle.Render(p.SelectedName())
	if !p.focused {
		return line
	}

	var b strings.Builder
	b.WriteString(line)
	if p.query != "" {
		b.WriteString(styles.DimStyle.Render("  /" + p.query))
	}

	if len(p.visible) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("  no matches"))
		return b.String()
	}

	start := max(0, min(p.cursor-pickerRows/2, len(p.visible)-pickerRows))
	end := min(start+pickerRows, len(p.visible))
	for i := start; i < end; i++ {
		name := styles.Pad(p.options[p.visible[i]].Name, max(width-4, 8))
		b.WriteString("\n  ")
		if i == p.cursor {
			b.WriteString(lipgloss.NewStyle().
				Foreground(styles.Current.Text).
				Background(styles.Current.Highlight).
				Render(name))
		} else {
			b.WriteString(styles.SubtitleStyle.Render(name))
		}
	}
	return b.String()
}
