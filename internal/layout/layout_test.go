package layout

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/theme"
)

func keyRune(r rune) tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// stubPage records what it receives and can be told to panic.
type stubPage struct {
	name       string
	lastMsg    tea.Msg
	panicOn    string
	initCalled *bool
}

func (p stubPage) Init() tea.Cmd {
	if p.initCalled != nil {
		*p.initCalled = true
	}
	if p.panicOn == "init" {
		panic("init exploded")
	}
	return nil
}

func (p stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.panicOn == "update" {
		panic("update exploded")
	}
	p.lastMsg = msg
	return p, nil
}

func (p stubPage) View() string {
	if p.panicOn == "view" {
		panic("view exploded")
	}
	return "page:" + p.name
}

func tableWith(t *testing.T, pages map[string]stubPage) *PageTable {
	t.Helper()
	tbl := NewPageTable()
	for route, p := range pages {
		p := p
		if err := tbl.Add(route, func() tea.Model { return p }); err != nil {
			t.Fatal(err)
		}
	}
	return tbl
}

// ---------------------------------------------------------------------------
// Page table
// ---------------------------------------------------------------------------

func TestPageTable_DuplicateRoute(t *testing.T) {
	tbl := NewPageTable()
	if err := tbl.Add("/a", func() tea.Model { return stubPage{} }); err != nil {
		t.Fatal(err)
	}
	err := tbl.Add("/a/", func() tea.Model { return stubPage{} })
	if !errors.Is(err, ErrDuplicatePage) {
		t.Errorf("expected ErrDuplicatePage, got %v", err)
	}
	if got := tbl.Routes(); len(got) != 1 || got[0] != "/a" {
		t.Errorf("unexpected routes %v", got)
	}
}

// ---------------------------------------------------------------------------
// Slot
// ---------------------------------------------------------------------------

func TestSlot_ShowResolvesPage(t *testing.T) {
	initCalled := false
	s := NewSlot(tableWith(t, map[string]stubPage{
		"/research": {name: "research", initCalled: &initCalled},
	}), nil, nil)

	s.Show("/research")

	if !s.Matched() {
		t.Error("expected route to match")
	}
	if !initCalled {
		t.Error("expected page Init to run")
	}
	if got := s.View(); got != "page:research" {
		t.Errorf("unexpected view %q", got)
	}
}

func TestSlot_UnknownRouteRendersNotFound(t *testing.T) {
	s := NewSlot(NewPageTable(), nil, nil)

	s.Show("/does-not-exist")

	if s.Matched() {
		t.Error("expected no match")
	}
	if _, ok := s.Page().(NotFound); !ok {
		t.Fatalf("expected NotFound page, got %T", s.Page())
	}
	view := s.View()
	if !strings.Contains(view, "Page not found") || !strings.Contains(view, "/does-not-exist") {
		t.Errorf("unexpected not-found view %q", view)
	}
}

func TestSlot_PanicsAreContained(t *testing.T) {
	for _, stage := range []string{"init", "update", "view"} {
		t.Run(stage, func(t *testing.T) {
			s := NewSlot(tableWith(t, map[string]stubPage{
				"/bad": {name: "bad", panicOn: stage},
			}), nil, nil)

			s.Show("/bad")
			s.Update(keyRune('x'))
			view := s.View()

			if s.Failure() == nil {
				t.Fatal("expected failure to be recorded")
			}
			if !strings.Contains(view, "stopped working") {
				t.Errorf("expected contained error notice, got %q", view)
			}
			if !strings.Contains(view, "exploded") {
				t.Errorf("expected panic text in notice, got %q", view)
			}
		})
	}
}

func TestSlot_PageFailedMsg(t *testing.T) {
	s := NewSlot(tableWith(t, map[string]stubPage{"/a": {name: "a"}}), nil, nil)
	s.Show("/a")

	s.Update(messages.PageFailedMsg{Route: "/a", Err: errors.New("backend unreachable")})

	if s.Failure() == nil || !strings.Contains(s.View(), "backend unreachable") {
		t.Errorf("expected failure notice, got %q", s.View())
	}
}

func TestSlot_PageFailedMsgForOtherRouteIgnored(t *testing.T) {
	s := NewSlot(tableWith(t, map[string]stubPage{
		"/a": {name: "a"},
		"/b": {name: "b"},
	}), nil, nil)
	s.Show("/b")

	s.Update(messages.PageFailedMsg{Route: "/a", Err: errors.New("a backend down")})

	if s.Failure() != nil {
		t.Errorf("expected /b to keep rendering, got failure %v", s.Failure())
	}
	if strings.Contains(s.View(), "a backend down") {
		t.Errorf("unexpected failure notice in %q", s.View())
	}
}

func TestSlot_ShowClearsFailure(t *testing.T) {
	s := NewSlot(tableWith(t, map[string]stubPage{
		"/bad":  {name: "bad", panicOn: "view"},
		"/good": {name: "good"},
	}), nil, nil)

	s.Show("/bad")
	_ = s.View()
	s.Show("/good")

	if s.Failure() != nil {
		t.Errorf("expected failure cleared, got %v", s.Failure())
	}
	if s.View() != "page:good" {
		t.Errorf("unexpected view %q", s.View())
	}
}

func TestSlot_ResizeReachesPage(t *testing.T) {
	s := NewSlot(tableWith(t, map[string]stubPage{"/a": {name: "a"}}), nil, nil)
	s.Show("/a")

	s.Resize(80, 20)

	p := s.Page().(stubPage)
	ws, ok := p.lastMsg.(tea.WindowSizeMsg)
	if !ok || ws.Width != 80 || ws.Height != 20 {
		t.Errorf("expected WindowSizeMsg{80,20}, got %#v", p.lastMsg)
	}
}

func TestSlot_ShowReplaysSize(t *testing.T) {
	s := NewSlot(tableWith(t, map[string]stubPage{"/a": {name: "a"}, "/b": {name: "b"}}), nil, nil)
	s.Show("/a")
	s.Resize(60, 10)

	s.Show("/b")

	p := s.Page().(stubPage)
	if ws, ok := p.lastMsg.(tea.WindowSizeMsg); !ok || ws.Width != 60 {
		t.Errorf("expected new page to receive size, got %#v", p.lastMsg)
	}
}

// ---------------------------------------------------------------------------
// Sidebar and topbar
// ---------------------------------------------------------------------------

func defaultSidebar(t *testing.T) *Sidebar {
	t.Helper()
	reg, err := registry.Default()
	if err != nil {
		t.Fatal(err)
	}
	return NewSidebar(reg, nil)
}

func TestSidebar_LinksHomeThenRegistry(t *testing.T) {
	links := defaultSidebar(t).Links()

	want := []string{nav.Root, "/research", "/document-qa", "/trading-bot", "/contract-deployer"}
	if len(links) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(links))
	}
	for i, l := range links {
		if l.Route != want[i] {
			t.Errorf("link %d: got %q, want %q", i, l.Route, want[i])
		}
	}
}

func TestSidebar_FocusNavigateActivate(t *testing.T) {
	s := defaultSidebar(t)
	s.Focus("/research")
	if !s.Focused() || s.cursor != 1 {
		t.Fatalf("expected focus on /research, cursor=%d", s.cursor)
	}

	s.Update(keyRune('j'))
	cmd := s.Update(keyType(tea.KeyEnter))

	if s.Focused() {
		t.Error("expected sidebar to release focus after activation")
	}
	if cmd == nil {
		t.Fatal("expected navigate cmd")
	}
	msg, ok := cmd().(messages.NavigateMsg)
	if !ok || msg.Route != "/document-qa" {
		t.Errorf("expected NavigateMsg to /document-qa, got %#v", msg)
	}
}

func TestSidebar_CursorBounds(t *testing.T) {
	s := defaultSidebar(t)
	s.Focus(nav.Root)

	s.Update(keyRune('k'))
	if s.cursor != 0 {
		t.Errorf("expected cursor=0, got %d", s.cursor)
	}
	for i := 0; i < 10; i++ {
		s.Update(keyType(tea.KeyDown))
	}
	if s.cursor != len(s.entries)-1 {
		t.Errorf("expected cursor at last entry, got %d", s.cursor)
	}
}

func TestSidebar_ViewListsTools(t *testing.T) {
	view := defaultSidebar(t).View("/research", 0)
	for _, name := range []string{"Home", "Crypto Research", "NovaDocs"} {
		if !strings.Contains(view, name) {
			t.Errorf("sidebar view missing %q", name)
		}
	}
}

func TestTopbar_ShowsRouteAndTheme(t *testing.T) {
	th := theme.New(theme.Light)
	th.Mount()
	bar := NewTopbar("Crypto-AI Suite", "s-1", th)

	view := bar.View("/trading-bot", 100)
	for _, want := range []string{"Crypto-AI Suite", "/trading-bot", "theme: light", "s-1"} {
		if !strings.Contains(view, want) {
			t.Errorf("topbar missing %q in %q", want, view)
		}
	}

	if err := th.Set(theme.Dark); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(bar.View("/", 100), "theme: dark") {
		t.Error("expected topbar to show the new theme on next render")
	}
}
