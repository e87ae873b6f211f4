package layout

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/logging"
	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// Slot is the content area. It renders the page for the active route and
// contains page failures so they never reach the rest of the shell.
type Slot struct {
	pages *PageTable
	theme *theme.Context
	log   *logging.Logger

	route   string
	page    tea.Model
	matched bool
	failure error

	width, height int
}

func NewSlot(pages *PageTable, th *theme.Context, log *logging.Logger) *Slot {
	return &Slot{pages: pages, theme: th, log: log}
}

// Route returns the route currently shown.
func (s *Slot) Route() string { return s.route }

// Page returns the current page model.
func (s *Slot) Page() tea.Model { return s.page }

// Matched reports whether the current route has a page.
func (s *Slot) Matched() bool { return s.matched }

// Failure returns the error that took the current page down, if any.
func (s *Slot) Failure() error { return s.failure }

// Show swaps in the page for route. Unknown routes get the not-found page.
func (s *Slot) Show(route string) tea.Cmd {
	s.route = route
	s.failure = nil

	page, ok := s.pages.Resolve(route)
	if !ok {
		page = newNotFound(route, s.theme)
	}
	s.page = page
	s.matched = ok

	var cmds []tea.Cmd
	s.guard("init", func() { cmds = append(cmds, s.page.Init()) })
	if s.width > 0 {
		cmds = append(cmds, s.Update(tea.WindowSizeMsg{Width: s.width, Height: s.height}))
	}
	return tea.Batch(cmds...)
}

// Resize records the content area size and passes it to the page.
func (s *Slot) Resize(width, height int) tea.Cmd {
	s.width, s.height = width, height
	if s.page == nil {
		return nil
	}
	return s.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

// Update forwards msg to the page.
func (s *Slot) Update(msg tea.Msg) tea.Cmd {
	if failed, ok := msg.(messages.PageFailedMsg); ok {
		if nav.Normalize(failed.Route) != s.route {
			s.log.Debug().
				Add(logging.Route(failed.Route)).
				Add(logging.ErrorField(failed.Err)).
				Msg("dropped failure from a page no longer shown")
			return nil
		}
		s.fail(failed.Err)
		return nil
	}
	if s.failure != nil || s.page == nil {
		return nil
	}

	var cmd tea.Cmd
	s.guard("update", func() {
		var next tea.Model
		next, cmd = s.page.Update(msg)
		s.page = next
	})
	return cmd
}

// View renders the page, or a contained notice if the page failed.
func (s *Slot) View() string {
	if s.failure == nil && s.page != nil {
		var out string
		s.guard("view", func() { out = s.page.View() })
		if s.failure == nil {
			return out
		}
	}
	if s.failure != nil {
		return s.failureView()
	}
	return ""
}

func (s *Slot) failureView() string {
	st := styles.For(s.theme)
	content := st.Title.Render("This page stopped working") + "\n\n"
	content += st.Err.Render(s.failure.Error()) + "\n\n"
	content += st.Dimmed.Render("The rest of the suite is unaffected.") + "\n"
	content += "\n" + st.Help.Render("esc back  tab sidebar")
	return st.ErrorBox.Render(content)
}

func (s *Slot) fail(err error) {
	if err == nil {
		err = fmt.Errorf("page at %s failed", s.route)
	}
	s.failure = err
	s.log.Error().
		Add(logging.Route(s.route)).
		Add(logging.ErrorField(err)).
		Msg("page failed")
}

func (s *Slot) guard(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(fmt.Errorf("%s %s: %v", stage, s.route, r))
		}
	}()
	fn()
}
