package lcd

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bnema/gamepanel/sys"
	"github.com/charmbracelet/log"
)

// State is the lifecycle position of a Session.
type State int32

const (
	Uninitialized State = iota
	Connecting
	Connected
	ShuttingDown
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case ShuttingDown:
		return "shutting down"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Session is a connected applet. It may be handed to another goroutine;
// calls are serialised internally.
type Session struct {
	mu         sync.Mutex
	capability Capability
	state      State
	handle     *sys.Handle
	ep         sys.EntryPoints
	registry   *Registry
	logger     *log.Logger
}

// Connect initializes the SDK for appName and checks that a device of
// capability c is attached. Only one Session may be connected at a time;
// a second call returns ErrAlreadyConnected without touching the SDK.
func Connect(appName string, c Capability, opts ...Option) (*Session, error) {
	if !c.Valid() {
		panic(fmt.Sprintf("lcd: invalid capability %#x", uint32(c)))
	}
	o := newOptions(opts)

	if !o.registry.acquire() {
		return nil, ErrAlreadyConnected
	}

	s := &Session{
		capability: c,
		state:      Connecting,
		registry:   o.registry,
		logger:     o.logger,
	}
	connected := false
	defer func() {
		if !connected {
			s.abort()
		}
	}()

	name, err := sys.UTF16FromString(appName)
	if err != nil {
		return nil, err
	}

	h, err := o.opener()
	if err != nil {
		return nil, fmt.Errorf("load LogitechLcd: %w", err)
	}
	s.handle = h
	s.ep = h.EntryPoints()

	if !s.ep.Init(&name[0], c.Flags()) {
		return nil, ErrInitialization
	}
	runtime.KeepAlive(name)

	if !s.ep.IsConnected(c.Flags()) {
		// Init registered the applet, undo it.
		s.ep.Shutdown()
		return nil, ErrNotConnected
	}

	s.state = Connected
	connected = true
	s.logger.Info("Connected to LCD", "app", appName, "capability", c)
	return s, nil
}

// ConnectMono connects to a monochrome display.
func ConnectMono(appName string, opts ...Option) (*Session, error) {
	return Connect(appName, Mono, opts...)
}

// ConnectColor connects to a color display.
func ConnectColor(appName string, opts ...Option) (*Session, error) {
	return Connect(appName, Color, opts...)
}

// ConnectEither connects to whichever display class is attached.
func ConnectEither(appName string, opts ...Option) (*Session, error) {
	return Connect(appName, Either, opts...)
}

// abort undoes a partial Connect.
func (s *Session) abort() {
	if s.handle != nil {
		if err := s.handle.Close(); err != nil {
			s.logger.Warn("Failed to unload LogitechLcd", "error", err)
		}
	}
	s.ep = sys.EntryPoints{}
	s.state = Closed
	s.registry.release()
}

// Capability returns the display classes the session was connected for.
func (s *Session) Capability() Capability {
	return s.capability
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// check panics unless the session is connected and includes need.
// Callers hold s.mu.
func (s *Session) check(need Capability) {
	if s.state != Connected {
		panic("lcd: session is " + s.state.String())
	}
	if need != 0 && !s.capability.Has(need) {
		panic(fmt.Sprintf("lcd: %s operation on a %s session", need, s.capability))
	}
}

// IsConnected reports whether a device of the session's capability is attached.
func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(0)
	return s.ep.IsConnected(s.capability.Flags())
}

// Update pushes pending changes to the display. Call it once per frame.
func (s *Session) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(0)
	s.ep.Update()
}

// IsButtonPressed reports whether any of buttons is held. Buttons outside the
// session's capability are ignored. Presses only register while the applet
// is in the foreground.
func (s *Session) IsButtonPressed(buttons sys.Button) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(0)
	return s.buttonPressed(buttons & s.capability.Buttons())
}

// IsMonoButtonPressed is IsButtonPressed restricted to the monochrome buttons.
func (s *Session) IsMonoButtonPressed(buttons sys.Button) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Mono)
	return s.buttonPressed(buttons & sys.MonoButtons)
}

// IsColorButtonPressed is IsButtonPressed restricted to the color buttons.
func (s *Session) IsColorButtonPressed(buttons sys.Button) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Color)
	return s.buttonPressed(buttons & sys.ColorButtons)
}

func (s *Session) buttonPressed(masked sys.Button) bool {
	if masked == 0 {
		return false
	}
	return s.ep.IsButtonPressed(uint32(masked))
}

// SetMonoBackground shows bytemap on the monochrome display. bytemap holds
// 160x43 bytes, one per pixel; values >= 128 light the pixel. It panics if
// the length is wrong.
func (s *Session) SetMonoBackground(bytemap []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Mono)
	checkFrame("mono", bytemap, sys.MonoFrameSize)

	if !s.ep.MonoSetBackground(&bytemap[0]) {
		return ErrMonoBackground
	}
	return nil
}

// SetMonoText writes text on line 0..3 of the monochrome display.
func (s *Session) SetMonoText(line int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Mono)
	checkLine("mono", line, sys.MonoLines)

	ws, err := sys.UTF16FromString(text)
	if err != nil {
		return err
	}
	ok := s.ep.MonoSetText(int32(line), &ws[0])
	runtime.KeepAlive(ws)
	if !ok {
		return ErrMonoText
	}
	return nil
}

// SetColorBackground shows bitmap on the color display. bitmap holds 320x240
// pixels of 4 bytes in BGRA order. It panics if the length is wrong.
func (s *Session) SetColorBackground(bitmap []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Color)
	checkFrame("color", bitmap, sys.ColorFrameSize)

	if !s.ep.ColorSetBackground(&bitmap[0]) {
		return ErrColorBackground
	}
	return nil
}

// SetColorTitle sets the title bar of the color display.
func (s *Session) SetColorTitle(text string, red, green, blue uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Color)

	ws, err := sys.UTF16FromString(text)
	if err != nil {
		return err
	}
	ok := s.ep.ColorSetTitle(&ws[0], int32(red), int32(green), int32(blue))
	runtime.KeepAlive(ws)
	if !ok {
		return ErrColorTitle
	}
	return nil
}

// SetColorText writes text on line 0..7 of the color display.
func (s *Session) SetColorText(line int, text string, red, green, blue uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Color)
	checkLine("color", line, sys.ColorLines)

	ws, err := sys.UTF16FromString(text)
	if err != nil {
		return err
	}
	ok := s.ep.ColorSetText(int32(line), &ws[0], int32(red), int32(green), int32(blue))
	runtime.KeepAlive(ws)
	if !ok {
		return ErrColorText
	}
	return nil
}

// SetMonoBackgroundUDK forwards a partial bitmap to the UDK entry point and
// returns its raw result.
func (s *Session) SetMonoBackgroundUDK(partial []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Mono)
	checkPartial("mono", partial, sys.MonoFrameSize)
	return int(s.ep.MonoSetBackgroundUDK(&partial[0], int32(len(partial))))
}

// ResetMonoBackgroundUDK returns the raw result of the UDK reset call.
func (s *Session) ResetMonoBackgroundUDK() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Mono)
	return int(s.ep.MonoResetBackgroundUDK())
}

// SetColorBackgroundUDK forwards a partial bitmap to the UDK entry point and
// returns its raw result.
func (s *Session) SetColorBackgroundUDK(partial []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Color)
	checkPartial("color", partial, sys.ColorFrameSize)
	return int(s.ep.ColorSetBackgroundUDK(&partial[0], int32(len(partial))))
}

// ResetColorBackgroundUDK returns the raw result of the UDK reset call.
func (s *Session) ResetColorBackgroundUDK() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.check(Color)
	return int(s.ep.ColorResetBackgroundUDK())
}

// Close shuts the applet down and unloads the library. It is safe to call
// more than once; only the first call reaches the SDK.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Connected {
		return nil
	}

	s.state = ShuttingDown
	defer func() {
		s.ep = sys.EntryPoints{}
		s.state = Closed
		s.registry.release()
	}()

	s.ep.Shutdown()
	if err := s.handle.Close(); err != nil {
		return fmt.Errorf("unload LogitechLcd: %w", err)
	}
	s.logger.Debug("LCD session closed")
	return nil
}

func checkFrame(kind string, frame []byte, size int) {
	if len(frame) != size {
		panic(fmt.Sprintf("lcd: %s frame is %d bytes, want %d", kind, len(frame), size))
	}
}

func checkPartial(kind string, partial []byte, max int) {
	if len(partial) == 0 || len(partial) > max {
		panic(fmt.Sprintf("lcd: %s UDK bitmap is %d bytes, want 1..%d", kind, len(partial), max))
	}
}

func checkLine(kind string, line, lines int) {
	if line < 0 || line >= lines {
		panic(fmt.Sprintf("lcd: %s line %d out of range 0..%d", kind, line, lines-1))
	}
}
