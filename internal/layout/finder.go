package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/icons"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/search"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// Finder is the ctrl+f overlay that jumps to a tool by name or description.
type Finder struct {
	index  *search.Index
	theme  *theme.Context
	input  textinput.Model
	hits   []search.Hit
	cursor int
	open   bool
	err    string
}

func NewFinder(index *search.Index, th *theme.Context) *Finder {
	ti := textinput.New()
	ti.Placeholder = "search tools"
	ti.CharLimit = 80
	ti.Width = 40
	return &Finder{index: index, theme: th, input: ti}
}

func (f *Finder) IsOpen() bool { return f.open }

// Hits returns the current results.
func (f *Finder) Hits() []search.Hit { return f.hits }

// Open shows the overlay with an empty query.
func (f *Finder) Open() tea.Cmd {
	f.open = true
	f.cursor = 0
	f.input.SetValue("")
	f.refresh()
	return tea.Batch(f.input.Focus(), textinput.Blink)
}

// Close hides the overlay.
func (f *Finder) Close() {
	f.open = false
	f.input.Blur()
}

func (f *Finder) refresh() {
	hits, err := f.index.Search(f.input.Value())
	if err != nil {
		f.err = err.Error()
		f.hits = nil
	} else {
		f.err = ""
		f.hits = hits
	}
	if f.cursor >= len(f.hits) {
		f.cursor = 0
	}
}

// Update handles messages while the overlay is open.
func (f *Finder) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+f":
			f.Close()
			return nil
		case "up", "ctrl+k":
			if f.cursor > 0 {
				f.cursor--
			}
			return nil
		case "down", "ctrl+j":
			if f.cursor < len(f.hits)-1 {
				f.cursor++
			}
			return nil
		case "enter":
			if len(f.hits) == 0 {
				return nil
			}
			t := f.hits[f.cursor].Tool
			f.Close()
			return nav.NewLink(t.Route, t.Name).Activate()
		}
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.cursor = 0
		f.refresh()
	}
	return cmd
}

func (f *Finder) View() string {
	st := styles.For(f.theme)

	content := st.Title.Render("Find a tool") + "\n\n"
	content += f.input.View() + "\n\n"

	switch {
	case f.err != "":
		content += st.Err.Render(f.err) + "\n"
	case len(f.hits) == 0:
		content += st.Dimmed.Render(fmt.Sprintf("No tools match %q.", strings.TrimSpace(f.input.Value()))) + "\n"
	default:
		for i, h := range f.hits {
			cursor := "  "
			nameStyle := st.Subtitle
			if i == f.cursor {
				cursor = st.Selected.Render("> ")
				nameStyle = st.Selected
			}
			glyph := icons.Resolve(h.Tool.Icon)
			content += cursor + glyph.Symbol + " " + nameStyle.Render(h.Tool.Name) +
				"  " + st.Dimmed.Render(h.Tool.Route) + "\n"
		}
	}

	content += "\n" + st.Help.Render("↑↓ select  enter open  esc close")
	return st.Box.Render(content)
}
