package sys

// Export names of LogitechLcd.dll. All of them are required.
const (
	SymInit                    = "LogiLcdInit"
	SymIsConnected             = "LogiLcdIsConnected"
	SymIsButtonPressed         = "LogiLcdIsButtonPressed"
	SymUpdate                  = "LogiLcdUpdate"
	SymShutdown                = "LogiLcdShutdown"
	SymMonoSetBackground       = "LogiLcdMonoSetBackground"
	SymMonoSetText             = "LogiLcdMonoSetText"
	SymColorSetBackground      = "LogiLcdColorSetBackground"
	SymColorSetTitle           = "LogiLcdColorSetTitle"
	SymColorSetText            = "LogiLcdColorSetText"
	SymColorSetBackgroundUDK   = "LogiLcdColorSetBackgroundUDK"
	SymColorResetBackgroundUDK = "LogiLcdColorResetBackgroundUDK"
	SymMonoSetBackgroundUDK    = "LogiLcdMonoSetBackgroundUDK"
	SymMonoResetBackgroundUDK  = "LogiLcdMonoResetBackgroundUDK"
)

// Symbols is the resolution order used by Load.
var Symbols = []string{
	SymInit,
	SymIsConnected,
	SymIsButtonPressed,
	SymUpdate,
	SymShutdown,
	SymMonoSetBackground,
	SymMonoSetText,
	SymColorSetBackground,
	SymColorSetTitle,
	SymColorSetText,
	SymColorSetBackgroundUDK,
	SymColorResetBackgroundUDK,
	SymMonoSetBackgroundUDK,
	SymMonoResetBackgroundUDK,
}

// EntryPoints holds one callable per SDK export. Strings are NUL-terminated
// UTF-16, bitmaps point at the first byte of a full frame.
type EntryPoints struct {
	Init            func(friendlyName *uint16, lcdType uint32) bool
	IsConnected     func(lcdType uint32) bool
	IsButtonPressed func(button uint32) bool
	Update          func()
	Shutdown        func()

	MonoSetBackground func(monoBitmap *byte) bool
	MonoSetText       func(lineNumber int32, text *uint16) bool

	ColorSetBackground func(colorBitmap *byte) bool
	ColorSetTitle      func(text *uint16, red, green, blue int32) bool
	ColorSetText       func(lineNumber int32, text *uint16, red, green, blue int32) bool

	// UDK variants, only meaningful for Unreal Development Kit integrations.
	ColorSetBackgroundUDK   func(partialBitmap *byte, arraySize int32) int32
	ColorResetBackgroundUDK func() int32
	MonoSetBackgroundUDK    func(partialBitmap *byte, arraySize int32) int32
	MonoResetBackgroundUDK  func() int32
}

// Addresses maps export names to resolved symbol addresses.
type Addresses map[string]uintptr

// Binder turns a fully resolved address table into callables.
type Binder func(Addresses) (EntryPoints, error)

// fields returns a pointer to every function field keyed by export name.
func (e *EntryPoints) fields() map[string]any {
	return map[string]any{
		SymInit:                    &e.Init,
		SymIsConnected:             &e.IsConnected,
		SymIsButtonPressed:         &e.IsButtonPressed,
		SymUpdate:                  &e.Update,
		SymShutdown:                &e.Shutdown,
		SymMonoSetBackground:       &e.MonoSetBackground,
		SymMonoSetText:             &e.MonoSetText,
		SymColorSetBackground:      &e.ColorSetBackground,
		SymColorSetTitle:           &e.ColorSetTitle,
		SymColorSetText:            &e.ColorSetText,
		SymColorSetBackgroundUDK:   &e.ColorSetBackgroundUDK,
		SymColorResetBackgroundUDK: &e.ColorResetBackgroundUDK,
		SymMonoSetBackgroundUDK:    &e.MonoSetBackgroundUDK,
		SymMonoResetBackgroundUDK:  &e.MonoResetBackgroundUDK,
	}
}

// Missing returns the export names whose callable is nil.
func (e *EntryPoints) Missing() []string {
	var out []string
	fields := e.fields()
	for _, name := range Symbols {
		if isNilFunc(fields[name]) {
			out = append(out, name)
		}
	}
	return out
}

func isNilFunc(p any) bool {
	switch f := p.(type) {
	case *func(*uint16, uint32) bool:
		return *f == nil
	case *func(uint32) bool:
		return *f == nil
	case *func():
		return *f == nil
	case *func(*byte) bool:
		return *f == nil
	case *func(int32, *uint16) bool:
		return *f == nil
	case *func(*uint16, int32, int32, int32) bool:
		return *f == nil
	case *func(int32, *uint16, int32, int32, int32) bool:
		return *f == nil
	case *func(*byte, int32) int32:
		return *f == nil
	case *func() int32:
		return *f == nil
	default:
		return true
	}
}
