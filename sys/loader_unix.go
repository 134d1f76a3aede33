//go:build darwin || freebsd || linux || netbsd

package sys

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// LibraryName is the bare file name handed to the dynamic linker. Outside
// Windows this only finds an ABI-compatible stand-in for the SDK.
var LibraryName = func() string {
	if runtime.GOOS == "darwin" {
		return "libLogitechLcd.dylib"
	}
	return "libLogitechLcd.so"
}()

type dlLoader struct{}

// DefaultLoader returns the dlopen based loader.
func DefaultLoader() Loader { return dlLoader{} }

func (dlLoader) Open(path string) (Library, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		// dlerror does not expose a code, so every failure is treated as a
		// missing module and the next strategy is tried.
		return nil, fmt.Errorf("%w: %s: %v", ErrModuleNotFound, path, err)
	}
	return &dlLibrary{handle: h}, nil
}

type dlLibrary struct {
	handle uintptr
}

func (l *dlLibrary) Lookup(name string) (uintptr, error) {
	return purego.Dlsym(l.handle, name)
}

func (l *dlLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
