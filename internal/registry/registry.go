package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ryan-rushton/nova/internal/icons"
	"github.com/ryan-rushton/nova/internal/nav"
)

var (
	ErrDuplicateName  = errors.New("duplicate tool name")
	ErrDuplicateRoute = errors.New("duplicate tool route")
	ErrInvalidTool    = errors.New("invalid tool")
	ErrDanglingRoute  = errors.New("tool route has no page")
)

//go:embed tools.yaml
var builtin []byte

// Tool describes one tool advertised in the directory.
type Tool struct {
	Name        string
	Description string
	Icon        icons.Ref
	Route       string
	URL         string
}

// Registry is an ordered, read-only set of tools. Insertion order is
// display order.
type Registry struct {
	tools    []Tool
	byRoute  map[string]int
	warnings []string
}

type entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Route       string `yaml:"route"`
	URL         string `yaml:"url"`
}

type table struct {
	Tools []entry `yaml:"tools"`
}

// New validates tools and builds a registry from them.
func New(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools:   make([]Tool, 0, len(tools)),
		byRoute: make(map[string]int, len(tools)),
	}
	names := make(map[string]struct{}, len(tools))

	for i, t := range tools {
		t.Name = strings.TrimSpace(t.Name)
		t.Description = strings.TrimSpace(t.Description)
		t.Route = strings.TrimSpace(t.Route)

		if t.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidTool, i)
		}
		if t.Description == "" {
			return nil, fmt.Errorf("%w: %q has no description", ErrInvalidTool, t.Name)
		}
		if !strings.HasPrefix(t.Route, "/") {
			return nil, fmt.Errorf("%w: %q route %q must start with /", ErrInvalidTool, t.Name, t.Route)
		}
		if t.Route == "/" {
			return nil, fmt.Errorf("%w: %q cannot use the root route", ErrInvalidTool, t.Name)
		}
		if strings.HasSuffix(t.Route, "/") {
			return nil, fmt.Errorf("%w: %q route %q has a trailing slash", ErrInvalidTool, t.Name, t.Route)
		}
		if t.Route != nav.Normalize(t.Route) {
			return nil, fmt.Errorf("%w: %q route %q is not a plain path (want %q)", ErrInvalidTool, t.Name, t.Route, nav.Normalize(t.Route))
		}

		if _, dup := names[t.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, t.Name)
		}
		if _, dup := r.byRoute[t.Route]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, t.Route)
		}

		names[t.Name] = struct{}{}
		r.byRoute[t.Route] = len(r.tools)
		r.tools = append(r.tools, t)
	}

	return r, nil
}

// Default returns the built-in suite directory.
func Default() (*Registry, error) {
	r, err := parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("built-in registry: %w", err)
	}
	return r, nil
}

// Load reads a registry table from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}
	r, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("registry file %s: %w", path, err)
	}
	return r, nil
}

func parse(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tbl table
	if err := dec.Decode(&tbl); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	// Icons are resolved here, once; an unknown name degrades to the
	// placeholder glyph and is reported as a warning.
	tools := make([]Tool, len(tbl.Tools))
	var warnings []string
	for i, e := range tbl.Tools {
		ref, ok := icons.Parse(e.Icon)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("tool %q: unknown icon %q, using placeholder", e.Name, e.Icon))
		}
		tools[i] = Tool{
			Name:        e.Name,
			Description: e.Description,
			Icon:        ref,
			Route:       e.Route,
			URL:         strings.TrimSpace(e.URL),
		}
	}

	r, err := New(tools...)
	if err != nil {
		return nil, err
	}
	r.warnings = warnings
	return r, nil
}

// Warnings lists non-fatal problems found while loading the table.
func (r *Registry) Warnings() []string {
	return r.warnings
}

// All returns a copy of the tools in display order.
func (r *Registry) All() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Len returns the number of tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Lookup returns the tool registered for route.
func (r *Registry) Lookup(route string) (Tool, bool) {
	i, ok := r.byRoute[route]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Index returns the display position of route, or -1.
func (r *Registry) Index(route string) int {
	if i, ok := r.byRoute[route]; ok {
		return i
	}
	return -1
}

// WithBaseURL returns a copy of the registry where tools without a URL are
// hosted at base+route.
func (r *Registry) WithBaseURL(base string) *Registry {
	base = strings.TrimRight(base, "/")
	out := &Registry{
		tools:    r.All(),
		byRoute:  r.byRoute,
		warnings: r.warnings,
	}
	if base == "" {
		return out
	}
	for i := range out.tools {
		if out.tools[i].URL == "" {
			out.tools[i].URL = base + out.tools[i].Route
		}
	}
	return out
}

// CheckPages reports every tool route for which hasPage returns false.
func (r *Registry) CheckPages(hasPage func(route string) bool) error {
	var missing []string
	for _, t := range r.tools {
		if !hasPage(t.Route) {
			missing = append(missing, t.Route)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrDanglingRoute, strings.Join(missing, ", "))
	}
	return nil
}
