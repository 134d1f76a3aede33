// Package sys declares the C ABI of the Logitech LCD/GamePanel SDK and loads
// LogitechLcd.dll at runtime.
package sys

import (
	"fmt"
	"strings"
)

// Screen geometry of the two display classes.
const (
	MonoWidth         = 160
	MonoHeight        = 43
	MonoBytesPerPixel = 1
	MonoLines         = 4

	ColorWidth         = 320
	ColorHeight        = 240
	ColorBytesPerPixel = 4
	ColorLines         = 8

	MonoFrameSize  = MonoWidth * MonoHeight * MonoBytesPerPixel
	ColorFrameSize = ColorWidth * ColorHeight * ColorBytesPerPixel
)

// LcdType selects the targeted display class(es).
type LcdType uint32

const (
	LcdMono   LcdType = 0x00000001
	LcdColor  LcdType = 0x00000002
	LcdEither         = LcdMono | LcdColor
)

// Has reports whether every bit of other is set in t.
func (t LcdType) Has(other LcdType) bool {
	return other != 0 && t&other == other
}

func (t LcdType) String() string {
	switch t {
	case LcdMono:
		return "mono"
	case LcdColor:
		return "color"
	case LcdEither:
		return "either"
	default:
		return fmt.Sprintf("LcdType(%#x)", uint32(t))
	}
}

// Button is a bit set of GamePanel buttons. Values are the absolute bit
// positions the SDK uses, so a Button can be passed to LogiLcdIsButtonPressed
// unchanged.
type Button uint32

const (
	MonoButton0 Button = 0x00000001
	MonoButton1 Button = 0x00000002
	MonoButton2 Button = 0x00000004
	MonoButton3 Button = 0x00000008

	ColorButtonLeft   Button = 0x00000100
	ColorButtonRight  Button = 0x00000200
	ColorButtonOk     Button = 0x00000400
	ColorButtonCancel Button = 0x00000800
	ColorButtonUp     Button = 0x00001000
	ColorButtonDown   Button = 0x00002000
	ColorButtonMenu   Button = 0x00004000

	MonoButtons  = MonoButton0 | MonoButton1 | MonoButton2 | MonoButton3
	ColorButtons = ColorButtonLeft | ColorButtonRight | ColorButtonOk | ColorButtonCancel |
		ColorButtonUp | ColorButtonDown | ColorButtonMenu
)

var buttonNames = []struct {
	b    Button
	name string
}{
	{MonoButton0, "mono0"},
	{MonoButton1, "mono1"},
	{MonoButton2, "mono2"},
	{MonoButton3, "mono3"},
	{ColorButtonLeft, "left"},
	{ColorButtonRight, "right"},
	{ColorButtonOk, "ok"},
	{ColorButtonCancel, "cancel"},
	{ColorButtonUp, "up"},
	{ColorButtonDown, "down"},
	{ColorButtonMenu, "menu"},
}

// ButtonsFor returns the buttons available on the given display class(es).
func ButtonsFor(t LcdType) Button {
	var b Button
	if t&LcdMono != 0 {
		b |= MonoButtons
	}
	if t&LcdColor != 0 {
		b |= ColorButtons
	}
	return b
}

// Each calls fn for every single button set in b, lowest bit first.
func (b Button) Each(fn func(Button)) {
	for _, n := range buttonNames {
		if b&n.b != 0 {
			fn(n.b)
		}
	}
}

func (b Button) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	rest := b
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
			rest &^= n.b
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseButton parses a button name as printed by String.
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "mono":
		return MonoButtons, nil
	case "color":
		return ColorButtons, nil
	}
	for _, n := range buttonNames {
		if n.name == name {
			return n.b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}
