// ABOUTME: Bubble Tea model for the prompt history search picker
// ABOUTME: Fuzzy-filtered scrollable list; Enter selects, Esc cancels

package histsearch

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/pi-hooks-go/internal/history"
)

const defaultMaxHeight = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	restStyle     = lipgloss.NewStyle().Faint(true)
)

// Model is the picker state. Value semantics, following tea.Model.
type Model struct {
	entries  []string
	previews []history.Preview

	visible   []int // indexes into entries, filtered
	selected  int
	scrollOff int
	maxHeight int
	width     int

	filter    string
	choice    string
	confirmed bool
	done      bool
}

// NewModel creates a picker over the given history entries (newest first).
func NewModel(entries []string) Model {
	previews := make([]history.Preview, len(entries))
	for i, text := range entries {
		previews[i] = history.BuildPreview(text)
	}
	m := Model{
		entries:   entries,
		previews:  previews,
		maxHeight: defaultMaxHeight,
	}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed at startup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.visible) > 0 {
				m.choice = m.entries[m.visible[m.selected]]
				m.confirmed = true
			}
			m.done = true
			return m, tea.Quit
		case tea.KeyUp:
			m.moveUp()
		case tea.KeyDown:
			m.moveDown()
		case tea.KeyBackspace:
			if m.filter != "" {
				runes := []rune(m.filter)
				m.filter = string(runes[:len(runes)-1])
				m.resetFilter()
			}
		case tea.KeyRunes, tea.KeySpace:
			m.filter += string(msg.Runes)
			m.resetFilter()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if h := msg.Height - 4; h > 0 && h < defaultMaxHeight {
			m.maxHeight = h
		}
	}
	return m, nil
}

// View renders the title, filter line, and the visible window of entries.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("Search past prompts."))
	b.WriteByte('\n')

	if m.filter == "" {
		b.WriteString(subtitleStyle.Render("search history"))
	} else {
		b.WriteString(m.filter)
	}
	b.WriteByte('\n')

	if len(m.visible) == 0 {
		b.WriteString(subtitleStyle.Render("  no matching prompts"))
		return b.String()
	}

	end := min(m.scrollOff+m.maxHeight, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		b.WriteByte('\n')
		b.WriteString(m.renderItem(i, i == m.selected))
	}
	return b.String()
}

// Choice returns the selected entry and whether a selection was confirmed.
func (m Model) Choice() (string, bool) {
	return m.choice, m.confirmed
}

func (m Model) renderItem(i int, selected bool) string {
	p := m.previews[m.visible[i]]
	line := "  " + p.First
	if p.Rest != "" {
		line += "  " + restStyle.Render(p.Rest)
	}
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "…")
	}
	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func (m *Model) moveUp() {
	if m.selected > 0 {
		m.selected--
		m.adjustScroll()
	}
}

func (m *Model) moveDown() {
	if m.selected < len(m.visible)-1 {
		m.selected++
		m.adjustScroll()
	}
}

func (m *Model) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+m.maxHeight {
		m.scrollOff = m.selected - m.maxHeight + 1
	}
}

func (m *Model) resetFilter() {
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
}

// applyFilter recomputes the visible indexes. The fuzzy pattern matches
// against the full entry text, not just the preview, so a filter can hit
// any line of a multi-line prompt.
func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visible = make([]int, len(m.entries))
		for i := range m.entries {
			m.visible[i] = i
		}
		return
	}

	matches := fuzzy.Find(m.filter, m.entries)
	m.visible = make([]int, len(matches))
	for i, match := range matches {
		m.visible[i] = match.Index
	}
}
