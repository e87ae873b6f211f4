package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/nova/internal/theme"
)

// Palette is the set of colors a theme draws with.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Dim     lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var (
	dark = Palette{
		Primary: lipgloss.Color("#00F0FF"),
		Accent:  lipgloss.Color("#FF2E97"),
		Muted:   lipgloss.Color("#8A8F98"),
		Dim:     lipgloss.Color("#3D4250"),
		Success: lipgloss.Color("#39FF14"),
		Error:   lipgloss.Color("#FF3131"),
	}

	light = Palette{
		Primary: lipgloss.Color("#005F87"),
		Accent:  lipgloss.Color("#AF005F"),
		Muted:   lipgloss.Color("#4E5562"),
		Dim:     lipgloss.Color("#9AA0AA"),
		Success: lipgloss.Color("#1E7B1E"),
		Error:   lipgloss.Color("#C0161B"),
	}
)

// PaletteFor returns the palette of a resolved theme.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Light {
		return light
	}
	return dark
}

// Styles is the lipgloss style set used by every view.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Dimmed   lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Err      lipgloss.Style
	Help     lipgloss.Style

	Box      lipgloss.Style
	Card     lipgloss.Style
	CardOn   lipgloss.Style
	Topbar   lipgloss.Style
	Sidebar  lipgloss.Style
	ErrorBox lipgloss.Style
}

// For builds styles for the context's current theme. Views call it on every
// render so a theme change shows up on the next frame.
func For(ctx *theme.Context) Styles {
	return New(PaletteFor(ctx.Resolved()))
}

// New builds styles from a palette.
func New(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Primary),

		Selected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Dimmed: lipgloss.NewStyle().
			Foreground(p.Dim),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Success: lipgloss.NewStyle().
			Foreground(p.Success),

		Err: lipgloss.NewStyle().
			Foreground(p.Error),

		Help: lipgloss.NewStyle().
			Foreground(p.Dim).
			Italic(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Dim).
			Padding(0, 1),

		CardOn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),

		Topbar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Dim).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(p.Dim).
			Padding(0, 1),

		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(1, 2),
	}
}
