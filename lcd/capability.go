package lcd

import (
	"fmt"
	"strings"

	"github.com/bnema/gamepanel/sys"
)

// Capability is the display class(es) a Session may drive.
type Capability uint32

const (
	Mono   = Capability(sys.LcdMono)
	Color  = Capability(sys.LcdColor)
	Either = Mono | Color
)

// Valid reports whether c names at least one known display class and nothing else.
func (c Capability) Valid() bool {
	return c != 0 && c&^Either == 0
}

// Has reports whether c includes every class in other.
func (c Capability) Has(other Capability) bool {
	return other != 0 && c&other == other
}

// Flags returns the value passed to LogiLcdInit and LogiLcdIsConnected.
func (c Capability) Flags() uint32 {
	return uint32(c)
}

// Buttons returns every button reachable with c.
func (c Capability) Buttons() sys.Button {
	return sys.ButtonsFor(sys.LcdType(c))
}

func (c Capability) String() string {
	return sys.LcdType(c).String()
}

// ParseCapability accepts "mono", "color" (or "colour") and "either" (or "both").
func ParseCapability(s string) (Capability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mono", "monochrome":
		return Mono, nil
	case "color", "colour":
		return Color, nil
	case "either", "both", "any":
		return Either, nil
	default:
		return 0, fmt.Errorf("unknown capability %q (must be mono, color or either)", s)
	}
}
