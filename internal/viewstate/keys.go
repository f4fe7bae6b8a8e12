package viewstate

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mobile/event/key"
)

// Bindings maps a key code to the panel it toggles.
type Bindings map[key.Code]Panel

// DefaultBindings returns the stock key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		key.CodeF2:       Debug,
		key.CodeHome:     Example,
		key.CodeSpacebar: ActionBar,
	}
}

// Bind returns a copy of b with p bound to code only. A zero code removes
// every binding of p.
func (b Bindings) Bind(p Panel, code key.Code) Bindings {
	out := make(Bindings, len(b)+1)
	for c, q := range b {
		if q != p {
			out[c] = q
		}
	}
	if code != key.CodeUnknown {
		out[code] = p
	}
	return out
}

// KeyFor returns the key bound to p, or CodeUnknown.
func (b Bindings) KeyFor(p Panel) key.Code {
	codes := make([]int, 0, 1)
	for c, q := range b {
		if q == p {
			codes = append(codes, int(c))
		}
	}
	if len(codes) == 0 {
		return key.CodeUnknown
	}
	sort.Ints(codes)
	return key.Code(codes[0])
}

var keyNames = map[string]key.Code{
	"escape":    key.CodeEscape,
	"space":     key.CodeSpacebar,
	"tab":       key.CodeTab,
	"enter":     key.CodeReturnEnter,
	"home":      key.CodeHome,
	"end":       key.CodeEnd,
	"pageup":    key.CodePageUp,
	"pagedown":  key.CodePageDown,
	"insert":    key.CodeInsert,
	"delete":    key.CodeDeleteForward,
	"backspace": key.CodeDeleteBackspace,
	"left":      key.CodeLeftArrow,
	"right":     key.CodeRightArrow,
	"up":        key.CodeUpArrow,
	"down":      key.CodeDownArrow,
	"f1":        key.CodeF1,
	"f2":        key.CodeF2,
	"f3":        key.CodeF3,
	"f4":        key.CodeF4,
	"f5":        key.CodeF5,
	"f6":        key.CodeF6,
	"f7":        key.CodeF7,
	"f8":        key.CodeF8,
	"f9":        key.CodeF9,
	"f10":       key.CodeF10,
	"f11":       key.CodeF11,
	"f12":       key.CodeF12,
}

// ParseKey converts a key name such as "F2", "Home", "Space" or a single
// letter or digit into a key code. An empty name yields CodeUnknown.
func ParseKey(name string) (key.Code, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "none" {
		return key.CodeUnknown, nil
	}
	if c, ok := keyNames[n]; ok {
		return c, nil
	}
	if len(n) == 1 {
		switch ch := n[0]; {
		case ch >= 'a' && ch <= 'z':
			return key.CodeA + key.Code(ch-'a'), nil
		case ch == '0':
			return key.Code0, nil
		case ch >= '1' && ch <= '9':
			return key.Code1 + key.Code(ch-'1'), nil
		}
	}
	return key.CodeUnknown, fmt.Errorf("unknown key %q", name)
}

// KeyName is the inverse of ParseKey. Codes without a name format as "none".
func KeyName(c key.Code) string {
	switch {
	case c >= key.CodeA && c <= key.CodeZ:
		return string(rune('A' + int(c-key.CodeA)))
	case c >= key.Code1 && c <= key.Code9:
		return string(rune('1' + int(c-key.Code1)))
	case c == key.Code0:
		return "0"
	}
	for n, code := range keyNames {
		if code == c {
			if len(n) <= 3 && n[0] == 'f' {
				return strings.ToUpper(n)
			}
			return strings.ToUpper(n[:1]) + n[1:]
		}
	}
	return "none"
}
