package layout

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// NotFound is the page for routes with no page.
type NotFound struct {
	Route string
	theme *theme.Context
}

func newNotFound(route string, th *theme.Context) NotFound {
	return NotFound{Route: route, theme: th}
}

func (m NotFound) Init() tea.Cmd {
	return nil
}

func (m NotFound) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "enter":
			return m, func() tea.Msg { return messages.BackMsg{} }
		}
	}
	return m, nil
}

func (m NotFound) View() string {
	st := styles.For(m.theme)
	content := st.Title.Render("Page not found") + "\n\n"
	content += "Nothing lives at " + st.Selected.Render(m.Route) + ".\n"
	content += st.Dimmed.Render("Pick a tool from the sidebar or go back.") + "\n"
	content += "\n" + st.Help.Render("esc/q back")
	return st.Box.Render(content)
}
