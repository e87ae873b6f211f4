package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/ryan-rushton/nova/internal/layout"
	"github.com/ryan-rushton/nova/internal/logging"
	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/search"
	"github.com/ryan-rushton/nova/internal/styles"
	"github.com/ryan-rushton/nova/internal/theme"
)

// Title is shown in the topbar.
const Title = "Crypto-AI Suite"

// Options configures a shell session.
type Options struct {
	Registry *registry.Registry
	Theme    theme.Theme
	// Route is the route to open first; empty means the directory.
	Route string
	Log   *logging.Logger
	// Pages overrides the default page table.
	Pages *layout.PageTable
	// CheckUpdate runs in the background at startup; it returns nil or a
	// messages.UpdateAvailableMsg.
	CheckUpdate tea.Cmd
}

// Model is the shell: topbar, sidebar and content slot. Topbar and sidebar
// are created once per session and survive every navigation.
type Model struct {
	reg     *registry.Registry
	router  *nav.Router
	theme   *theme.Context
	topbar  *layout.Topbar
	sidebar *layout.Sidebar
	slot    *layout.Slot
	finder  *layout.Finder
	index   *search.Index
	life    *lifecycle
	log     *logging.Logger
	session string

	initCmd     tea.Cmd
	checkUpdate tea.Cmd
	updateTag   string

	width, height int
}

// New mounts a shell session. Configuration errors (a registry route with
// no page, clashing pages) are returned before anything renders.
func New(opts Options) (Model, error) {
	if opts.Registry == nil {
		return Model{}, errors.New("shell needs a registry")
	}
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	session := uuid.NewString()

	life, err := newLifecycle(session, log)
	if err != nil {
		return Model{}, fmt.Errorf("building shell lifecycle: %w", err)
	}

	th := theme.New(opts.Theme)
	th.Mount()
	life.ready()

	pages := opts.Pages
	if pages == nil {
		pages, err = Pages(opts.Registry, th)
		if err != nil {
			return Model{}, fmt.Errorf("building pages: %w", err)
		}
	}
	if err := opts.Registry.CheckPages(pages.Has); err != nil {
		return Model{}, err
	}

	index, err := search.New(opts.Registry)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		reg:         opts.Registry,
		router:      nav.NewRouter(opts.Route),
		theme:       th,
		topbar:      layout.NewTopbar(Title, session, th),
		sidebar:     layout.NewSidebar(opts.Registry, th),
		slot:        layout.NewSlot(pages, th, log),
		finder:      layout.NewFinder(index, th),
		index:       index,
		life:        life,
		log:         log,
		session:     session,
		checkUpdate: opts.CheckUpdate,
	}
	m.initCmd = m.slot.Show(m.router.Current())

	log.Info().
		Add(logging.Session(session)).
		Add(logging.Route(m.router.Current())).
		Add(logging.Theme(string(th.Current()))).
		Add(logging.Int("tools", opts.Registry.Len())).
		Msg("shell mounted")

	return m, nil
}

// Close tears the session down once the program has exited.
func (m Model) Close() {
	m.life.stop()
	m.theme.Close()
	_ = m.index.Close()
	m.log.Info().Add(logging.Session(m.session)).Msg("shell closed")
}

// Route returns the active route.
func (m Model) Route() string { return m.router.Current() }

// Phase returns the lifecycle phase.
func (m Model) Phase() Phase { return m.life.Phase() }

func (m Model) Theme() *theme.Context    { return m.theme }
func (m Model) Topbar() *layout.Topbar   { return m.topbar }
func (m Model) Sidebar() *layout.Sidebar { return m.sidebar }
func (m Model) Slot() *layout.Slot       { return m.slot }
func (m Model) Session() string          { return m.session }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.checkUpdate)
}

func (m Model) contentSize() (int, int) {
	w := m.width - layout.SidebarWidth - 2
	h := m.height - 3
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.slot.Resize(m.contentSize())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case messages.NavigateMsg:
		return m, m.navigate(msg.Route)

	case messages.BackMsg:
		return m, m.back()

	case messages.UpdateAvailableMsg:
		m.updateTag = msg.Tag
		return m, nil
	}

	return m, m.slot.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		m.cycleTheme()
		return m, nil
	}

	if m.finder.IsOpen() {
		return m, m.finder.Update(msg)
	}
	if msg.String() == "ctrl+f" {
		m.sidebar.Blur()
		return m, m.finder.Open()
	}

	if m.sidebar.Focused() {
		if msg.String() == "tab" {
			m.sidebar.Blur()
			return m, nil
		}
		return m, m.sidebar.Update(msg)
	}

	switch msg.String() {
	case "tab":
		m.sidebar.Focus(m.router.Current())
		return m, nil
	case "esc":
		if m.router.Current() != nav.Root {
			return m, m.back()
		}
	}

	return m, m.slot.Update(msg)
}

// navigate is the only path from a link activation to a route change.
func (m Model) navigate(route string) tea.Cmd {
	if nav.Normalize(route) == m.router.Current() {
		return nil
	}
	m.life.begin()
	defer m.life.settle()

	from, _ := m.router.Navigate(route)
	cmd := m.slot.Show(m.router.Current())

	m.log.Info().
		Add(logging.Session(m.session)).
		Add(logging.FromRoute(from)).
		Add(logging.ToRoute(m.router.Current())).
		Add(logging.Bool("matched", m.slot.Matched())).
		Msg("navigated")
	return cmd
}

func (m Model) back() tea.Cmd {
	if !m.router.CanBack() {
		return nil
	}
	from := m.router.Current()
	m.life.begin()
	defer m.life.settle()

	m.router.Back()
	cmd := m.slot.Show(m.router.Current())

	m.log.Info().
		Add(logging.Session(m.session)).
		Add(logging.FromRoute(from)).
		Add(logging.ToRoute(m.router.Current())).
		Msg("navigated back")
	return cmd
}

func (m Model) cycleTheme() {
	next, err := m.theme.Cycle()
	if err != nil {
		m.log.Warn().Add(logging.ErrorField(err)).Msg("theme change rejected")
		return
	}
	m.log.Info().
		Add(logging.Session(m.session)).
		Add(logging.Theme(string(next))).
		Msg("theme changed")
}

// SetTheme changes the theme by name. Unrecognised names are rejected.
func (m Model) SetTheme(name string) error {
	t, err := theme.Parse(name)
	if err != nil {
		return err
	}
	if err := m.theme.Set(t); err != nil {
		return err
	}
	m.log.Info().Add(logging.Session(m.session)).Add(logging.Theme(name)).Msg("theme changed")
	return nil
}

func (m Model) View() string {
	st := styles.For(m.theme)
	route := m.router.Current()

	top := m.topbar.View(route, m.width)
	if m.updateTag != "" {
		top += "\n" + st.Selected.Render(" Update available: "+m.updateTag+" (run nova update)")
	}

	contentW, _ := m.contentSize()
	bodyH := m.height - lipgloss.Height(top)
	if bodyH < 0 {
		bodyH = 0
	}

	var content string
	if m.finder.IsOpen() {
		content = m.finder.View()
	} else {
		content = m.slot.View()
	}
	pane := lipgloss.NewStyle().Padding(0, 1)
	if m.width > 0 {
		pane = pane.Width(contentW + 2)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(route, bodyH),
		pane.Render(content),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}
