//go:build windows

package sys

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// LibraryName is the bare file name handed to the OS search path.
const LibraryName = "LogitechLcd.dll"

type windowsLoader struct{}

// DefaultLoader returns the kernel32 LoadLibrary based loader.
func DefaultLoader() Loader { return windowsLoader{} }

func (windowsLoader) Open(path string) (Library, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		var errno windows.Errno
		if errors.As(err, &errno) {
			switch errno {
			case windows.ERROR_MOD_NOT_FOUND, windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
				return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
			}
			return nil, &SystemError{Op: "LoadLibrary " + path, Code: uint32(errno), Err: err}
		}
		return nil, &SystemError{Op: "LoadLibrary " + path, Err: err}
	}
	return &windowsLibrary{handle: h}, nil
}

type windowsLibrary struct {
	handle windows.Handle
}

func (l *windowsLibrary) Lookup(name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(l.handle, name)
	if err != nil {
		return 0, err
	}
	return addr, nil
}

func (l *windowsLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := windows.FreeLibrary(l.handle)
	l.handle = 0
	return err
}
