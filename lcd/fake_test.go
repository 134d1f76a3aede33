package lcd

import (
	"sync"
	"unsafe"

	"github.com/bnema/gamepanel/sys"
)

// fakeSDK stands in for LogitechLcd.dll and records every call.
type fakeSDK struct {
	mu sync.Mutex

	initOK       bool
	connected    bool
	pressed      sys.Button
	backgroundOK bool
	textOK       bool
	udkResult    int32

	calls    map[string]int
	appName  string
	lcdTypes []uint32
	buttons  []uint32
	texts    []textCall
	frames   [][]byte
}

type textCall struct {
	op      string
	line    int32
	text    string
	r, g, b int32
}

func newFakeSDK() *fakeSDK {
	return &fakeSDK{
		initOK:       true,
		connected:    true,
		backgroundOK: true,
		textOK:       true,
		calls:        map[string]int{},
	}
}

func (f *fakeSDK) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
}

func (f *fakeSDK) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeSDK) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeSDK) entryPoints() sys.EntryPoints {
	copyFrame := func(p *byte, n int) []byte {
		return append([]byte(nil), unsafe.Slice(p, n)...)
	}
	return sys.EntryPoints{
		Init: func(name *uint16, lcdType uint32) bool {
			f.record(sys.SymInit)
			f.appName = sys.UTF16PtrToString(name)
			f.lcdTypes = append(f.lcdTypes, lcdType)
			return f.initOK
		},
		IsConnected: func(lcdType uint32) bool {
			f.record(sys.SymIsConnected)
			f.lcdTypes = append(f.lcdTypes, lcdType)
			return f.connected
		},
		IsButtonPressed: func(button uint32) bool {
			f.record(sys.SymIsButtonPressed)
			f.buttons = append(f.buttons, button)
			return sys.Button(button)&f.pressed != 0
		},
		Update:   func() { f.record(sys.SymUpdate) },
		Shutdown: func() { f.record(sys.SymShutdown) },
		MonoSetBackground: func(p *byte) bool {
			f.record(sys.SymMonoSetBackground)
			f.frames = append(f.frames, copyFrame(p, sys.MonoFrameSize))
			return f.backgroundOK
		},
		MonoSetText: func(line int32, text *uint16) bool {
			f.record(sys.SymMonoSetText)
			f.texts = append(f.texts, textCall{op: sys.SymMonoSetText, line: line, text: sys.UTF16PtrToString(text)})
			return f.textOK
		},
		ColorSetBackground: func(p *byte) bool {
			f.record(sys.SymColorSetBackground)
			f.frames = append(f.frames, copyFrame(p, sys.ColorFrameSize))
			return f.backgroundOK
		},
		ColorSetTitle: func(text *uint16, r, g, b int32) bool {
			f.record(sys.SymColorSetTitle)
			f.texts = append(f.texts, textCall{op: sys.SymColorSetTitle, text: sys.UTF16PtrToString(text), r: r, g: g, b: b})
			return f.textOK
		},
		ColorSetText: func(line int32, text *uint16, r, g, b int32) bool {
			f.record(sys.SymColorSetText)
			f.texts = append(f.texts, textCall{op: sys.SymColorSetText, line: line, text: sys.UTF16PtrToString(text), r: r, g: g, b: b})
			return f.textOK
		},
		ColorSetBackgroundUDK: func(p *byte, n int32) int32 {
			f.record(sys.SymColorSetBackgroundUDK)
			f.frames = append(f.frames, copyFrame(p, int(n)))
			return f.udkResult
		},
		ColorResetBackgroundUDK: func() int32 {
			f.record(sys.SymColorResetBackgroundUDK)
			return f.udkResult
		},
		MonoSetBackgroundUDK: func(p *byte, n int32) int32 {
			f.record(sys.SymMonoSetBackgroundUDK)
			f.frames = append(f.frames, copyFrame(p, int(n)))
			return f.udkResult
		},
		MonoResetBackgroundUDK: func() int32 {
			f.record(sys.SymMonoResetBackgroundUDK)
			return f.udkResult
		},
	}
}

// fakeLibrary counts unloads.
type fakeLibrary struct {
	closed int
}

func (l *fakeLibrary) Lookup(string) (uintptr, error) { return 0, nil }

func (l *fakeLibrary) Close() error {
	l.closed++
	return nil
}

type fixture struct {
	sdk      *fakeSDK
	lib      *fakeLibrary
	registry *Registry
	opened   int
}

func newFixture() *fixture {
	return &fixture{sdk: newFakeSDK(), lib: &fakeLibrary{}, registry: &Registry{}}
}

func (fx *fixture) options() []Option {
	return []Option{
		WithRegistry(fx.registry),
		WithOpener(func() (*sys.Handle, error) {
			fx.opened++
			return sys.NewHandle(fx.sdk.entryPoints(), fx.lib)
		}),
	}
}

func (fx *fixture) connect(c Capability) (*Session, error) {
	return Connect("Test Applet", c, fx.options()...)
}
