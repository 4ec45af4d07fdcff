package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// NounListModel - Interactive noun selection
// =============================================================================

// NounListModel is the bubbletea model for picking a noun. Typing narrows
// the list to nouns containing the filter text.
type NounListModel struct {
	Nouns    []string
	Filter   string
	Matches  []string
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewNounListModel creates a noun list model over nouns, which should be
// sorted.
func NewNounListModel(nouns []string) NounListModel {
	return NounListModel{
		Nouns:   nouns,
		Matches: nouns,
		Height:  15,
	}
}

func (m NounListModel) Init() tea.Cmd {
	return nil
}

func (m NounListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.Matches)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			if len(m.Matches) == 0 {
				return m, nil
			}
			m.Selected = m.Matches[m.Cursor]
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Filter != "" {
				r := []rune(m.Filter)
				m = m.filter(string(r[:len(r)-1]))
			}
		case tea.KeyRunes:
			m = m.filter(m.Filter + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m NounListModel) filter(f string) NounListModel {
	m.Filter = f
	m.Cursor, m.Offset = 0, 0
	if f == "" {
		m.Matches = m.Nouns
		return m
	}
	m.Matches = nil
	for _, n := range m.Nouns {
		if strings.Contains(n, f) {
			m.Matches = append(m.Matches, n)
		}
	}
	return m
}

func (m NounListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Noun"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n\n")
	b.WriteString("  filter: " + StyleValue.Render(m.Filter) + "\n\n")

	end := min(m.Offset+m.Height, len(m.Matches))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + m.Matches[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + m.Matches[i]))
		}
		b.WriteString("\n")
	}
	if len(m.Matches) == 0 {
		b.WriteString(listDimStyle.Render("  no matching nouns"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Matches)), len(m.Matches))))

	return b.String()
}
