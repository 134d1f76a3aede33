package sys

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/bnema/gamepanel/internal/logger"
	"github.com/charmbracelet/log"
)

var hostArch = runtime.GOARCH

// Loader opens shared libraries.
type Loader interface {
	// Open loads the library at path. A missing module is reported as an
	// error wrapping ErrModuleNotFound.
	Open(path string) (Library, error)
}

// Library is an opened shared library.
type Library interface {
	Lookup(name string) (uintptr, error)
	Close() error
}

// LoadOptions configures Load. Zero fields select the platform defaults.
type LoadOptions struct {
	// Path skips the registry lookup when set.
	Path     string
	Resolver *Resolver
	Loader   Loader
	Bind     Binder
	Logger   *log.Logger
}

// Handle owns a loaded library and its resolved entry points.
type Handle struct {
	lib   Library
	entry EntryPoints

	once     sync.Once
	closeErr error
}

// NewHandle wraps an already bound table. lib may be nil when the table is
// not backed by a real library.
func NewHandle(ep EntryPoints, lib Library) (*Handle, error) {
	if missing := ep.Missing(); len(missing) > 0 {
		return nil, &SymbolNotFoundError{Name: missing[0]}
	}
	return &Handle{lib: lib, entry: ep}, nil
}

// EntryPoints returns the resolved callables. They must not be used after
// Close.
func (h *Handle) EntryPoints() EntryPoints {
	return h.entry
}

// Close unloads the library. Only the first call has an effect.
func (h *Handle) Close() error {
	h.once.Do(func() {
		if h.lib != nil {
			h.closeErr = h.lib.Close()
		}
		h.entry = EntryPoints{}
	})
	return h.closeErr
}

// Load locates LogitechLcd, opens it and resolves every export in Symbols.
// Either all exports are bound or the library is released and an error is
// returned.
func Load(opts LoadOptions) (*Handle, error) {
	l := opts.Logger
	if l == nil {
		l = logger.Logger
	}
	loader := opts.Loader
	if loader == nil {
		loader = DefaultLoader()
	}
	bind := opts.Bind
	if bind == nil {
		bind = BindPurego
	}

	lib, err := openLibrary(opts, loader, l)
	if err != nil {
		return nil, err
	}

	addrs := make(Addresses, len(Symbols))
	for _, name := range Symbols {
		addr, err := lib.Lookup(name)
		if err == nil && addr == 0 {
			err = errors.New("nil address")
		}
		if err != nil {
			if cerr := lib.Close(); cerr != nil {
				l.Warn("Failed to release library after symbol lookup failure", "error", cerr)
			}
			return nil, &SymbolNotFoundError{Name: name, Err: err}
		}
		addrs[name] = addr
	}

	ep, err := bind(addrs)
	if err != nil {
		_ = lib.Close()
		return nil, err
	}
	h, err := NewHandle(ep, lib)
	if err != nil {
		_ = lib.Close()
		return nil, err
	}
	l.Debug("Loaded LogitechLcd", "symbols", len(addrs))
	return h, nil
}

// openLibrary tries the explicit path or the registry location, then the
// bare name. Only "not found" outcomes fall through.
func openLibrary(opts LoadOptions, loader Loader, l *log.Logger) (Library, error) {
	path := opts.Path
	if path == "" {
		resolver := NewResolver()
		if opts.Resolver != nil {
			r := *opts.Resolver
			resolver = &r
		}
		if resolver.Logger == nil {
			resolver.Logger = l
		}
		loc, err := resolver.Resolve()
		if err != nil {
			l.Debugf("Load: registry lookup failed: %v", err)
		} else {
			path = loc.Path
		}
	}

	if path != "" {
		lib, err := loader.Open(path)
		if err == nil {
			l.Debug("Load: opened library", "path", path)
			return lib, nil
		}
		if !errors.Is(err, ErrModuleNotFound) {
			return nil, err
		}
		l.Debugf("Load: %v, falling back to %s", err, LibraryName)
	}

	lib, err := loader.Open(LibraryName)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
		}
		return nil, err
	}
	l.Debug("Load: opened library from search path", "name", LibraryName)
	return lib, nil
}
