package menu

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danlite/as3pkg/internal/classpath"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model of the disambiguation menu. The separator
// entry is drawn as a rule and can never be selected.
type Model struct {
	title     string
	items     []string
	cursor    int
	chosen    int
	cancelled bool
	width     int
}

// NewModel creates a menu over items with the cursor on the first
// selectable entry.
func NewModel(title string, items []string) Model {
	m := Model{title: title, items: items, cursor: -1, chosen: -1}
	m.cursor = m.next(-1, 1)
	return m
}

// Chosen returns the selected index, or -1 when nothing was chosen
func (m Model) Chosen() int {
	return m.chosen
}

// Cancelled reports whether the user dismissed the menu
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if m.cursor < 0 {
			m.cancelled = true
		} else {
			m.chosen = m.cursor
		}
		return m, tea.Quit

	case tea.KeyUp:
		m.move(-1)
		return m, nil

	case tea.KeyDown:
		m.move(1)
		return m, nil

	case tea.KeyRunes:
		return m.handleRunes(string(msg.Runes))
	}

	return m, nil
}

// handleRunes supports vi-style movement, q to quit and 1-9 to pick the
// nth selectable entry directly.
func (m Model) handleRunes(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "q":
		m.cancelled = true
		return m, tea.Quit
	case "k":
		m.move(-1)
		return m, nil
	case "j":
		m.move(1)
		return m, nil
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 9 {
		if idx := nthSelectable(m.items, n); idx >= 0 {
			m.chosen = idx
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) move(dir int) {
	if next := m.next(m.cursor, dir); next >= 0 {
		m.cursor = next
	}
}

// next finds the closest selectable index after from in direction dir
func (m Model) next(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.items); i += dir {
		if selectable(m.items[i]) {
			return i
		}
	}
	return -1
}

// nthSelectable returns the index of the nth (1-based) selectable item,
// counting the way List and View number them, or -1.
func nthSelectable(items []string, n int) int {
	if n < 1 {
		return -1
	}
	for i, item := range items {
		if !selectable(item) {
			continue
		}
		if n--; n == 0 {
			return i
		}
	}
	return -1
}

func selectable(item string) bool {
	return item != classpath.Separator
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteRune('\n')
	}

	rule := strings.Repeat("─", 24)
	if m.width > 8 {
		rule = strings.Repeat("─", min(m.width-4, 60))
	}

	shortcut := 0
	for i, item := range m.items {
		if !selectable(item) {
			b.WriteString(separatorStyle.Render("  " + rule))
			b.WriteRune('\n')
			continue
		}

		shortcut++
		label := item
		if shortcut <= 9 {
			label = strconv.Itoa(shortcut) + " " + item
		} else {
			label = "  " + item
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(normalStyle.Render("  " + label))
		}
		b.WriteRune('\n')
	}

	b.WriteString(hintStyle.Render("enter select · esc cancel"))
	return b.String()
}
