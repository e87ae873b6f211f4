package home

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/nova/internal/icons"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

const (
	heading = "Welcome to Crypto-AI Suite"
	intro   = "Explore our set of AI-powered tools for cryptocurrency research, analysis, and management. " +
		"Select a tool below or from the sidebar to get started."

	minCardWidth = 34
	cardGap      = 2
)

// Card is one directory entry.
type Card struct {
	Glyph       icons.Glyph
	Name        string
	Description string
	Link        nav.Link
}

// Cards builds one card per tool, in registry order.
func Cards(tools []registry.Tool) []Card {
	cards := make([]Card, len(tools))
	for i, t := range tools {
		cards[i] = Card{
			Glyph:       icons.Resolve(t.Icon),
			Name:        t.Name,
			Description: t.Description,
			Link:        nav.NewLink(t.Route, t.Name),
		}
	}
	return cards
}

// Model is the directory view shown at the root route.
type Model struct {
	cards  []Card
	theme  *theme.Context
	cursor int
	width  int
}

func New(reg *registry.Registry, th *theme.Context) Model {
	return Model{
		cards: Cards(reg.All()),
		theme: th,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// columns is how many cards fit side by side.
func (m Model) columns() int {
	if m.width >= 2*minCardWidth+cardGap {
		return 2
	}
	return 1
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		cols := m.columns()
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor-cols >= 0 {
				m.cursor -= cols
			}
		case "down", "j":
			if m.cursor+cols < len(m.cards) {
				m.cursor += cols
			}
		case "left", "h":
			if m.cursor%cols > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor%cols < cols-1 && m.cursor+1 < len(m.cards) {
				m.cursor++
			}
		case "enter", " ":
			if len(m.cards) > 0 {
				return m, m.cards[m.cursor].Link.Activate()
			}
		}
	}
	return m, nil
}

func (m Model) cardWidth() int {
	cols := m.columns()
	if m.width == 0 {
		return minCardWidth
	}
	// Two border cells and two padding cells per card.
	w := (m.width-cardGap*(cols-1))/cols - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) View() string {
	st := styles.For(m.theme)

	var b strings.Builder
	b.WriteString(st.Title.Render(heading) + "\n")
	intro := st.Muted.Render(intro)
	if m.width > 0 {
		intro = st.Muted.Width(m.width).Render(intro)
	}
	b.WriteString(intro + "\n\n")

	if len(m.cards) == 0 {
		b.WriteString(st.Dimmed.Render("No tools are configured."))
		return b.String()
	}

	cols := m.columns()
	width := m.cardWidth()
	var rows []string
	for start := 0; start < len(m.cards); start += cols {
		var row []string
		for i := start; i < start+cols && i < len(m.cards); i++ {
			if i > start {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, m.renderCard(st, i, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n" + st.Help.Render("↑↓←→/hjkl navigate  enter open  tab sidebar  ctrl+f find  q quit"))

	return b.String()
}

func (m Model) renderCard(st styles.Styles, i, width int) string {
	c := m.cards[i]
	box := st.Card
	nameStyle := st.Subtitle.Bold(true)
	if i == m.cursor {
		box = st.CardOn
		nameStyle = st.Selected
	}

	title := st.Title.Render(c.Glyph.Symbol) + " " + nameStyle.Render(c.Name)
	desc := st.Muted.Width(width).Render(c.Description)
	return box.Width(width).Render(title + "\n" + desc)
}
