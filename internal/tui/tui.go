package tui

import (
	"fmt"
	"strings"

	otocomplete "github.com/SeaOfBirds/roma-otocomplete"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const defaultLimit = 10

// Model searches on every keystroke and lists the suggestions.
type Model struct {
	input    textinput.Model
	searcher otocomplete.Searcher
	filters  []otocomplete.CharFilter

	query    string
	results  []otocomplete.Suggestion[otocomplete.Candidate]
	selected int
	chosen   *otocomplete.Candidate
	err      error

	limit int
	width int
}

// New creates a model backed by searcher.
func New(searcher otocomplete.Searcher) Model {
	ti := textinput.New()
	ti.Placeholder = "romaji..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		input:    ti,
		searcher: searcher,
		filters:  []otocomplete.CharFilter{otocomplete.NewWidthFoldCharFilter(), otocomplete.NewLowercaseCharFilter()},
		limit:    defaultLimit,
	}
}

// Chosen returns the candidate picked with enter, if any.
func (m Model) Chosen() *otocomplete.Candidate {
	return m.chosen
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if len(m.results) > 0 {
				c := m.results[m.selected].Item
				m.chosen = &c
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.selected < m.visible()-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := otocomplete.FilterAll(m.input.Value(), m.filters); q != m.query {
		m.query = q
		m.search()
	}
	return m, cmd
}

func (m *Model) search() {
	m.selected = 0
	m.results, m.err = m.searcher.Search(m.query)
}

func (m Model) visible() int {
	if len(m.results) < m.limit {
		return len(m.results)
	}
	return m.limit
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("otocomplete"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if n := m.visible(); n > 0 {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.renderResults(n)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "↑/↓: select • enter: choose • esc: quit"
	if m.query != "" {
		help = fmt.Sprintf("%d match(es) • %s", len(m.results), help)
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m Model) renderResults(n int) string {
	labelWidth := 0
	for _, r := range m.results[:n] {
		if w := runewidth.StringWidth(r.Item.Label); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, n)
	for i, r := range m.results[:n] {
		// 全角の候補名でも桁を揃える
		label := runewidth.FillRight(r.Item.Label, labelWidth)
		style := labelStyle
		if i == m.selected {
			style = selectedLabelStyle
		}
		romaji := ""
		if r.View != nil {
			romaji = r.View.String()
		}
		lines[i] = style.Render(label) + "  " + romajiStyle.Render(romaji)
	}
	return strings.Join(lines, "\n")
}
