// Package launcher is the page shown for a hosted tool. The tool itself runs
// elsewhere; this page describes it and hands its URL to the browser.
package launcher

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/ryan-rushton/nova/internal/icons"
	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

func init() {
	// The browser helper echoes to the terminal, which the TUI owns.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener opens a URL outside the terminal.
type Opener func(url string) error

type openedMsg struct {
	route string
	url   string
	err   error
}

// Model is a hosted tool's page.
type Model struct {
	tool   registry.Tool
	theme  *theme.Context
	open   Opener
	status string
	err    string
}

// New returns the page for tool.
func New(tool registry.Tool, th *theme.Context) Model {
	return NewWithOpener(tool, th, browser.OpenURL)
}

// NewWithOpener is New with a custom URL opener.
func NewWithOpener(tool registry.Tool, th *theme.Context, open Opener) Model {
	return Model{tool: tool, theme: th, open: open}
}

// Tool returns the descriptor the page shows.
func (m Model) Tool() registry.Tool {
	return m.tool
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) cmdOpen() tea.Cmd {
	route, url, open := m.tool.Route, m.tool.URL, m.open
	return func() tea.Msg {
		return openedMsg{route: route, url: url, err: open(url)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.route != m.tool.Route {
			return m, nil
		}
		if msg.err != nil {
			m.status = ""
			m.err = fmt.Sprintf("could not open %s: %v", msg.url, msg.err)
		} else {
			m.err = ""
			m.status = "Opened " + msg.url
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return messages.BackMsg{} }
		case "o", "enter":
			if m.tool.URL == "" {
				m.err = "no URL is configured for this tool (set base_url in the config)"
				return m, nil
			}
			m.err = ""
			m.status = "Opening " + m.tool.URL + "..."
			return m, m.cmdOpen()
		}
	}
	return m, nil
}

func (m Model) View() string {
	st := styles.For(m.theme)
	glyph := icons.Resolve(m.tool.Icon)

	content := st.Title.Render(glyph.Symbol+" "+m.tool.Name) + "\n\n"
	content += m.tool.Description + "\n\n"

	if m.tool.URL != "" {
		content += st.Dimmed.Render("Hosted at ") + st.Subtitle.Render(m.tool.URL) + "\n"
	} else {
		content += st.Dimmed.Render("Hosted URL not configured.") + "\n"
	}

	if m.status != "" {
		content += "\n" + st.Success.Render(m.status) + "\n"
	}
	if m.err != "" {
		content += "\n" + st.Err.Render(m.err) + "\n"
	}

	content += "\n" + st.Help.Render("o/enter open in browser  esc/q back")
	return st.Box.Render(content)
}
