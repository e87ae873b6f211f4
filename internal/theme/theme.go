package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownTheme is returned when a theme name is not one of All().
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is a visual theme selection.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"

	// Default is what consumers see before the context is mounted.
	Default = Dark
)

var all = []Theme{Light, Dark, System}

// All returns the recognised themes in cycle order.
func All() []Theme {
	return append([]Theme(nil), all...)
}

// Parse validates a theme name. Unrecognised values are rejected.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (want one of light, dark, system)", ErrUnknownTheme, s)
	}
	return t, nil
}

// Valid reports whether t is a recognised theme.
func (t Theme) Valid() bool {
	for _, v := range all {
		if t == v {
			return true
		}
	}
	return false
}

// Next returns the theme after t in cycle order.
func (t Theme) Next() Theme {
	for i, v := range all {
		if t == v {
			return all[(i+1)%len(all)]
		}
	}
	return Default
}

// Context holds the shell's current theme. It is created and mounted by the
// shell and handed to every component that renders.
type Context struct {
	current Theme
	mounted bool
	version int

	// darkBackground queries the terminal background. It runs once, in Mount,
	// before any program owns the terminal's input.
	darkBackground func() bool
	dark           bool
}

// New returns an unmounted context that will start with initial once
// mounted. An invalid initial value falls back to Default.
func New(initial Theme) *Context {
	if !initial.Valid() {
		initial = Default
	}
	return &Context{
		current:        initial,
		darkBackground: lipgloss.HasDarkBackground,
	}
}

// Mount makes the context live and records the terminal background used to
// resolve System. Reads before Mount return Default.
func (c *Context) Mount() {
	c.dark = true
	if c.darkBackground != nil {
		c.dark = c.darkBackground()
	}
	c.mounted = true
}

// Mounted reports whether the context is live.
func (c *Context) Mounted() bool {
	return c != nil && c.mounted
}

// Close tears the context down; later reads return Default.
func (c *Context) Close() {
	if c != nil {
		c.mounted = false
	}
}

// Current returns the active theme.
func (c *Context) Current() Theme {
	if !c.Mounted() {
		return Default
	}
	return c.current
}

// Resolved returns Light or Dark, resolving System from the background
// recorded at Mount.
func (c *Context) Resolved() Theme {
	t := c.Current()
	if t != System {
		return t
	}
	if !c.dark {
		return Light
	}
	return Dark
}

// Version counts accepted Set calls.
func (c *Context) Version() int {
	if c == nil {
		return 0
	}
	return c.version
}

// Set changes the theme. It must be mounted and t must be recognised.
func (c *Context) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, string(t))
	}
	if !c.Mounted() {
		return errors.New("theme context is not mounted")
	}
	c.current = t
	c.version++
	return nil
}

// Cycle advances to the next theme and returns it.
func (c *Context) Cycle() (Theme, error) {
	next := c.Current().Next()
	if err := c.Set(next); err != nil {
		return c.Current(), err
	}
	return next, nil
}
