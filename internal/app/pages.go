package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/home"
	"github.com/ryan-rushton/nova/internal/layout"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/theme"
	"github.com/ryan-rushton/nova/internal/tools/datastorer"
	"github.com/ryan-rushton/nova/internal/tools/launcher"
)

// Pages builds the page table: the directory at the root, a launcher page
// per registered tool, and the unadvertised data storer.
func Pages(reg *registry.Registry, th *theme.Context) (*layout.PageTable, error) {
	tbl := layout.NewPageTable()

	if err := tbl.Add(nav.Root, func() tea.Model { return home.New(reg, th) }); err != nil {
		return nil, err
	}
	for _, t := range reg.All() {
		t := t
		if err := tbl.Add(t.Route, func() tea.Model { return launcher.New(t, th) }); err != nil {
			return nil, err
		}
	}
	if err := tbl.Add(datastorer.Route, func() tea.Model { return datastorer.New(th) }); err != nil {
		return nil, err
	}

	return tbl, nil
}
