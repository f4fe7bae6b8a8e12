package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/theme"
	"github.com/example/liv/internal/viewstate"
)

// DefaultTitle is the window title prefix.
const DefaultTitle = "Liv"

// Panels holds which overlay panels are shown at start.
type Panels struct {
	ActionBar bool
	Debug     bool
	Metadata  bool
	Example   bool
}

// Keys holds the key that toggles each panel. An empty value leaves the
// panel without a key.
type Keys struct {
	ActionBar string
	Debug     string
	Metadata  string
	Example   string
}

// Notify holds notification settings.
type Notify struct {
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Title          string
	Theme          string
	Backend        string
	Filter         string
	ZoomMultiplier float64
	PrintDebugInfo bool
	Panels         Panels
	Keys           Keys
	Notify         Notify
	Themes         map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Title:          DefaultTitle,
		Theme:          "", // Default to empty to allow fallback to Env/Default
		Filter:         render.Linear.String(),
		ZoomMultiplier: viewstate.DefaultZoomMultiplier,
		Panels: Panels{
			ActionBar: true,
		},
		Keys: Keys{
			ActionBar: "Space",
			Debug:     "F2",
			Example:   "Home",
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// InitialPanels converts the start-up panel flags.
func (c *Config) InitialPanels() viewstate.Panels {
	var ps viewstate.Panels
	ps = ps.With(viewstate.ActionBar, c.Panels.ActionBar)
	ps = ps.With(viewstate.Debug, c.Panels.Debug)
	ps = ps.With(viewstate.Metadata, c.Panels.Metadata)
	ps = ps.With(viewstate.Example, c.Panels.Example)
	return ps
}

// Bindings resolves the configured keys.
func (c *Config) Bindings() (viewstate.Bindings, error) {
	b := viewstate.Bindings{}
	for _, k := range []struct {
		panel viewstate.Panel
		name  string
	}{
		{viewstate.ActionBar, c.Keys.ActionBar},
		{viewstate.Debug, c.Keys.Debug},
		{viewstate.Metadata, c.Keys.Metadata},
		{viewstate.Example, c.Keys.Example},
	} {
		code, err := viewstate.ParseKey(k.name)
		if err != nil {
			return nil, fmt.Errorf("key for %s: %w", k.panel, err)
		}
		b = b.Bind(k.panel, code)
	}
	return b, nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Title != "" {
		fmt.Fprintf(&sb, "title = %s\n", c.Title)
	}
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Backend != "" {
		fmt.Fprintf(&sb, "backend = %s\n", c.Backend)
	}
	if c.Filter != "" {
		fmt.Fprintf(&sb, "filter = %s\n", c.Filter)
	}
	fmt.Fprintf(&sb, "zoom_multiplier = %g\n", c.ZoomMultiplier)
	fmt.Fprintf(&sb, "print_debug_info = %v\n", c.PrintDebugInfo)
	sb.WriteString("\n")

	sb.WriteString("[panels]\n")
	fmt.Fprintf(&sb, "action_bar = %v\n", c.Panels.ActionBar)
	fmt.Fprintf(&sb, "debug = %v\n", c.Panels.Debug)
	fmt.Fprintf(&sb, "metadata = %v\n", c.Panels.Metadata)
	fmt.Fprintf(&sb, "example = %v\n", c.Panels.Example)
	sb.WriteString("\n")

	sb.WriteString("[keys]\n")
	fmt.Fprintf(&sb, "action_bar = %s\n", orNone(c.Keys.ActionBar))
	fmt.Fprintf(&sb, "debug = %s\n", orNone(c.Keys.Debug))
	fmt.Fprintf(&sb, "metadata = %s\n", orNone(c.Keys.Metadata))
	fmt.Fprintf(&sb, "example = %s\n", orNone(c.Keys.Example))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name = %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s = %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
