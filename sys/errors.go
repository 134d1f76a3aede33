package sys

import (
	"errors"
	"fmt"
)

var (
	// ErrLibraryNotFound is returned when neither the registry lookup nor the
	// bare-name load could find the SDK library.
	ErrLibraryNotFound = errors.New("LogitechLcd library not found")
	// ErrModuleNotFound is returned by a Loader when the OS reports that the
	// module does not exist. Load falls through to the next strategy on it.
	ErrModuleNotFound = errors.New("module not found")
	// ErrNullCharacter is returned when a string holds an embedded NUL.
	ErrNullCharacter = errors.New("unexpected NUL character")
	// ErrUnsupported is returned on platforms without a dynamic loader.
	ErrUnsupported = errors.New("dynamic loading not supported on this platform")
)

// SymbolNotFoundError reports a required export missing from the library.
type SymbolNotFoundError struct {
	Name string
	Err  error
}

func (e *SymbolNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("symbol %s not found: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("symbol %s not found", e.Name)
}

func (e *SymbolNotFoundError) Unwrap() error { return e.Err }

// SystemError is an OS loader failure other than "not found".
type SystemError struct {
	Op   string
	Code uint32
	Err  error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%s failed (code %d): %v", e.Op, e.Code, e.Err)
}

func (e *SystemError) Unwrap() error { return e.Err }
