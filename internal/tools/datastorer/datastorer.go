// Package datastorer is the unadvertised Blockchain Data Storer page. The
// storer is not built yet; the page only says what it will be.
package datastorer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// Route is where the page is mounted. It has no directory entry.
const Route = "/blockchain-data"

// Model is the data storer placeholder page.
type Model struct {
	theme *theme.Context
}

func New(th *theme.Context) Model {
	return Model{theme: th}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			return m, func() tea.Msg { return messages.BackMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	st := styles.For(m.theme)
	content := st.Title.Render("Blockchain Data Storer") + "\n\n"
	content += "NLP Blockchain data storer - for BNB and Flare. Gives publicly accessible link and QR to share.\n\n"
	content += st.Dimmed.Render("Coming soon.") + "\n"
	content += "\n" + st.Help.Render("esc/q back")
	return st.Box.Render(content)
}
