package lcd

import (
	"errors"

	"github.com/bnema/gamepanel/sys"
)

var (
	// ErrAlreadyConnected is returned by Connect while another Session is live.
	ErrAlreadyConnected = errors.New("another lcd session is already connected")
	// ErrNotConnected is returned when no device of the requested class is attached.
	ErrNotConnected = errors.New("LCD is not connected")
	// ErrInitialization is returned when LogiLcdInit reports failure.
	ErrInitialization = errors.New("a call to LogiLcdInit() has failed")
	// ErrNullCharacter is returned for text with an embedded NUL.
	ErrNullCharacter = sys.ErrNullCharacter
)

// OperationError is a per-call SDK failure. The SDK reports nothing beyond a
// boolean, so the failing export is the only detail.
type OperationError struct {
	Op string
}

func (e *OperationError) Error() string {
	return "a call to " + e.Op + "() has failed"
}

var (
	ErrMonoBackground  = &OperationError{Op: sys.SymMonoSetBackground}
	ErrMonoText        = &OperationError{Op: sys.SymMonoSetText}
	ErrColorBackground = &OperationError{Op: sys.SymColorSetBackground}
	ErrColorTitle      = &OperationError{Op: sys.SymColorSetTitle}
	ErrColorText       = &OperationError{Op: sys.SymColorSetText}
)
