package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// Topbar is the strip across the top of the shell.
type Topbar struct {
	title   string
	session string
	theme   *theme.Context
}

func NewTopbar(title, session string, th *theme.Context) *Topbar {
	return &Topbar{title: title, session: session, theme: th}
}

// Session returns the shell session id shown in the bar.
func (t *Topbar) Session() string { return t.session }

func (t *Topbar) View(route string, width int) string {
	st := styles.For(t.theme)

	left := st.Title.Render(t.title) + st.Dimmed.Render("  "+route)
	short := t.session
	if len(short) > 8 {
		short = short[:8]
	}
	right := st.Muted.Render("theme: "+string(t.theme.Current())) + st.Help.Render("  ctrl+t  "+short)

	inner := width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right

	bar := st.Topbar
	if width > 0 {
		bar = bar.Width(width)
	}
	return bar.Render(line)
}
