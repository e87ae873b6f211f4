package layout

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/icons"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// SidebarWidth is the sidebar's outer width in cells.
const SidebarWidth = 30

type entry struct {
	glyph icons.Glyph
	link  nav.Link
}

// Sidebar lists Home and every tool.
type Sidebar struct {
	entries []entry
	theme   *theme.Context
	focused bool
	cursor  int
}

func NewSidebar(reg *registry.Registry, th *theme.Context) *Sidebar {
	entries := []entry{{
		glyph: icons.Glyph{Symbol: "⌂", Label: "home"},
		link:  nav.NewLink(nav.Root, "Home"),
	}}
	for _, t := range reg.All() {
		entries = append(entries, entry{
			glyph: icons.Resolve(t.Icon),
			link:  nav.NewLink(t.Route, t.Name),
		})
	}
	return &Sidebar{entries: entries, theme: th}
}

// Links returns the sidebar links in display order.
func (s *Sidebar) Links() []nav.Link {
	out := make([]nav.Link, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.link
	}
	return out
}

func (s *Sidebar) Focused() bool { return s.focused }

// Focus gives the sidebar the keyboard, with the cursor on the active route.
func (s *Sidebar) Focus(active string) {
	s.focused = true
	for i, e := range s.entries {
		if e.link.Route == active {
			s.cursor = i
			return
		}
	}
}

func (s *Sidebar) Blur() { s.focused = false }

// Update handles keys while focused. Activating an entry returns its
// navigation command and hands the keyboard back to the content.
func (s *Sidebar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "enter", " ":
		s.focused = false
		return s.entries[s.cursor].link.Activate()
	case "esc":
		s.focused = false
	}
	return nil
}

func (s *Sidebar) View(active string, height int) string {
	st := styles.For(s.theme)
	inner := SidebarWidth - 3

	var b strings.Builder
	b.WriteString(st.Dimmed.Render("TOOLS") + "\n\n")
	for i, e := range s.entries {
		label := truncate(e.link.Label, inner-4)
		line := e.glyph.Symbol + " " + label

		marker := "  "
		style := st.Muted
		if e.link.Route == active {
			style = st.Subtitle.Bold(true)
		}
		if s.focused && i == s.cursor {
			marker = st.Selected.Render("> ")
			style = st.Selected
		}
		b.WriteString(marker + style.Render(line) + "\n")
	}
	if s.focused {
		b.WriteString("\n" + st.Help.Render("enter open  esc/tab leave"))
	} else {
		b.WriteString("\n" + st.Help.Render("tab focus"))
	}

	box := st.Sidebar.Width(SidebarWidth - 1)
	if height > 0 {
		box = box.Height(height)
	}
	return box.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
