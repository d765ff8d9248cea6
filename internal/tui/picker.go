// Package tui implements the interactive checkbox picker used to choose
// which templates to merge.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ireland-samantha/prompt-merge/internal/template"
)

// Styles for the template picker.
var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pickerHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickerCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pickerBaseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	pickerDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PickerResult holds the outcome of the interactive picker.
type PickerResult struct {
	Selected  []template.Template // picked templates, in discovery order
	Confirmed bool                // true if the user confirmed, false if cancelled
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// pickerModel is the Bubble Tea model for the checkbox picker.
type pickerModel struct {
	items        []template.Template
	selected     []bool
	cursor       int
	scrollOffset int
	width        int
	height       int
	result       PickerResult
}

func newPickerModel(items []template.Template) pickerModel {
	return pickerModel{
		items:    items,
		selected: make([]bool, len(items)),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Navigation wraps around both ends of the
// list; any unbound key (including a lone escape) is ignored.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			// Cancellation discards all in-progress toggles.
			m.result = PickerResult{}
			return m, tea.Quit

		case key.Matches(msg, keys.Confirm):
			m.result = PickerResult{Selected: m.picked(), Confirmed: true}
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
			m.ensureVisible()
			return m, nil

		case key.Matches(msg, keys.Down):
			m.cursor = (m.cursor + 1) % len(m.items)
			m.ensureVisible()
			return m, nil

		case key.Matches(msg, keys.Toggle):
			m.selected[m.cursor] = !m.selected[m.cursor]
			return m, nil
		}
	}

	return m, nil
}

// picked returns the selected templates in discovery order.
func (m pickerModel) picked() []template.Template {
	var out []template.Template
	for i, t := range m.items {
		if m.selected[i] {
			out = append(out, t)
		}
	}
	return out
}

// selectedCount counts currently toggled items.
func (m pickerModel) selectedCount() int {
	count := 0
	for _, s := range m.selected {
		if s {
			count++
		}
	}
	return count
}

// visibleItems returns how many items fit the current terminal height.
// Each item renders as two rows, plus header/footer chrome.
func (m pickerModel) visibleItems() int {
	visible := (m.height - 7) / 2
	if visible < 1 {
		visible = 1
	}
	return visible
}

// ensureVisible keeps the cursor row inside the scroll window.
func (m *pickerModel) ensureVisible() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View implements tea.Model. The whole screen is repainted on every
// update; bubbletea's alt-screen handling takes care of clearing.
func (m pickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(pickerTitleStyle.Render("Select templates to merge") + "\n")
	sb.WriteString(pickerHelpStyle.Render("space: toggle • ↑/k ↓/j: move • enter: confirm • q: cancel") + "\n\n")

	visible := m.visibleItems()
	end := m.scrollOffset + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := m.scrollOffset; i < end; i++ {
		t := m.items[i]

		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		check := "[ ]"
		if m.selected[i] {
			check = "[x]"
		}
		base := ""
		if t.IsBase {
			base = " [BASE]"
		}

		line := fmt.Sprintf(" %s %s %s%s", cursor, check, t.RelPath, base)
		switch {
		case i == m.cursor:
			line = pickerCursorStyle.Render(line)
		case t.IsBase:
			line = pickerBaseStyle.Render(line)
		}
		sb.WriteString(line + "\n")
		sb.WriteString(pickerDescStyle.Render("       "+t.Title) + "\n")
	}

	if len(m.items) > visible {
		sb.WriteString(pickerHelpStyle.Render(fmt.Sprintf("\n(%d/%d)", m.cursor+1, len(m.items))))
	}

	sb.WriteString(fmt.Sprintf("\n%d template(s) selected", m.selectedCount()))

	return sb.String()
}

// RunPicker runs the interactive checkbox picker over the given templates.
// The tea program owns the terminal's raw mode for its whole lifetime and
// restores the previous state on every exit path, including cancellation,
// interrupt, and read errors. Items must be non-empty; callers guard the
// zero-template case.
func RunPicker(items []template.Template) (PickerResult, error) {
	// Render on stderr so stdout stays clean for the merge summary,
	// and make lipgloss detect colors from stderr as well.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr, termenv.WithColorCache(true)))

	m := newPickerModel(items)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(pickerModel).result, nil
}
