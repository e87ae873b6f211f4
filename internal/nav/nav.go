package nav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/messages"
)

// Root is the directory route.
const Root = "/"

// Link is an activatable reference to a route.
type Link struct {
	Route string
	Label string
}

// NewLink returns a link to route.
func NewLink(route, label string) Link {
	return Link{Route: Normalize(route), Label: label}
}

// Activate returns the command that asks the shell to navigate. The link
// itself never touches route state.
func (l Link) Activate() tea.Cmd {
	route := l.Route
	return func() tea.Msg {
		return messages.NavigateMsg{Route: route}
	}
}

// Normalize turns user input such as "research/" into "/research".
func Normalize(route string) string {
	route = strings.TrimSpace(route)
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = "/" + strings.Trim(route, "/")
	return route
}

// Router owns the active route. It is the only place route state changes.
type Router struct {
	current     string
	history     []string
	transitions int
}

// NewRouter starts at the given route.
func NewRouter(initial string) *Router {
	return &Router{current: Normalize(initial)}
}

// Current returns the active route.
func (r *Router) Current() string {
	return r.current
}

// Transitions counts route changes since the router was created.
func (r *Router) Transitions() int {
	return r.transitions
}

// Navigate makes route active. Navigating to the active route is a no-op.
func (r *Router) Navigate(route string) (from string, changed bool) {
	from = r.current
	route = Normalize(route)
	if route == from {
		return from, false
	}
	r.history = append(r.history, from)
	r.current = route
	r.transitions++
	return from, true
}

// CanBack reports whether Back would change the route.
func (r *Router) CanBack() bool {
	return len(r.history) > 0 || r.current != Root
}

// Back returns to the previous route, or to Root when there is no history.
// It reports false when already at Root with nothing to go back to.
func (r *Router) Back() bool {
	if !r.CanBack() {
		return false
	}
	if len(r.history) == 0 {
		r.current = Root
		r.transitions++
		return true
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.current = last
	r.transitions++
	return true
}
