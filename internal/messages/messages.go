package messages

import tea "github.com/charmbracelet/bubbletea"

// BackMsg is sent by pages when they want to return to the previous route.
type BackMsg struct{}

// NavigateMsg is sent when a navigation link is activated.
type NavigateMsg struct {
	Route string
}

// PageFailedMsg is sent by a page that can no longer render. Route names the
// failing page; the slot ignores failures for any other route.
type PageFailedMsg struct {
	Route string
	Err   error
}

// UpdateAvailableMsg is sent when a background check finds a newer release.
type UpdateAvailableMsg struct {
	Tag string
}

// standalone wraps a page so that BackMsg and NavigateMsg quit instead of
// navigating. Used when a page is launched directly via `nova open`.
type standalone struct {
	inner tea.Model
}

// Standalone wraps a page for direct CLI invocation.
func Standalone(m tea.Model) tea.Model {
	return standalone{inner: m}
}

func (s standalone) Init() tea.Cmd {
	return s.inner.Init()
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return s, tea.Quit
	}
	switch msg.(type) {
	case BackMsg, NavigateMsg:
		return s, tea.Quit
	}
	m, cmd := s.inner.Update(msg)
	s.inner = m
	return s, cmd
}

func (s standalone) View() string {
	return s.inner.View()
}
