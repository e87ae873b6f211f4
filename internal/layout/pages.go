package layout

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/nav"
)

// ErrDuplicatePage is returned when two pages claim one route.
var ErrDuplicatePage = errors.New("route already has a page")

// Factory builds a fresh page each time its route is entered.
type Factory func() tea.Model

// PageTable maps routes to pages.
type PageTable struct {
	pages map[string]Factory
	order []string
}

func NewPageTable() *PageTable {
	return &PageTable{pages: make(map[string]Factory)}
}

// Add registers a page for route.
func (t *PageTable) Add(route string, f Factory) error {
	route = nav.Normalize(route)
	if _, dup := t.pages[route]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicatePage, route)
	}
	t.pages[route] = f
	t.order = append(t.order, route)
	return nil
}

// Has reports whether route has a page.
func (t *PageTable) Has(route string) bool {
	_, ok := t.pages[route]
	return ok
}

// Routes lists routes in registration order.
func (t *PageTable) Routes() []string {
	return append([]string(nil), t.order...)
}

// Resolve builds the page for route.
func (t *PageTable) Resolve(route string) (tea.Model, bool) {
	f, ok := t.pages[route]
	if !ok {
		return nil, false
	}
	return f(), true
}
