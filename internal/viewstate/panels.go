package viewstate

import (
	"fmt"
	"strings"
)

// Panel identifies an overlay panel with its own visibility flag.
type Panel int

const (
	ActionBar Panel = iota
	Debug
	Metadata
	Example

	panelCount
)

// StackOrder is the order panels are drawn in, bottom first.
var StackOrder = [...]Panel{ActionBar, Debug, Metadata, Example}

var panelNames = [panelCount]string{
	ActionBar: "action_bar",
	Debug:     "debug",
	Metadata:  "metadata",
	Example:   "example",
}

func (p Panel) String() string {
	if p < 0 || p >= panelCount {
		return fmt.Sprintf("Panel(%d)", int(p))
	}
	return panelNames[p]
}

// ParsePanel returns the panel with the given config name.
func ParsePanel(name string) (Panel, error) {
	for i, n := range panelNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Panel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown panel %q", name)
}

// Panels holds the visibility flag of every panel.
type Panels [panelCount]bool

// Visible reports whether p is shown.
func (ps Panels) Visible(p Panel) bool {
	if p < 0 || p >= panelCount {
		return false
	}
	return ps[p]
}

// Toggle returns ps with the flag of p flipped.
func (ps Panels) Toggle(p Panel) Panels {
	if p < 0 || p >= panelCount {
		return ps
	}
	ps[p] = !ps[p]
	return ps
}

// With returns ps with the flag of p set to shown.
func (ps Panels) With(p Panel, shown bool) Panels {
	if p < 0 || p >= panelCount {
		return ps
	}
	ps[p] = shown
	return ps
}
