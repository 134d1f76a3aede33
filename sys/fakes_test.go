package sys

import (
	"errors"
	"fmt"
)

type fakeStore struct {
	values map[string]string
	errs   map[string]error
	probed []string
}

func (s *fakeStore) ReadDefault(root Root, path string) (string, error) {
	key := Probe{root, path}.String()
	s.probed = append(s.probed, key)
	if err, ok := s.errs[key]; ok {
		return "", err
	}
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", errors.New("The system cannot find the file specified.")
}

type fakeLibrary struct {
	symbols map[string]uintptr
	missing string
	lookups []string
	closed  int
}

func newFakeLibrary(missing string) *fakeLibrary {
	lib := &fakeLibrary{symbols: map[string]uintptr{}, missing: missing}
	for i, name := range Symbols {
		if name != missing {
			lib.symbols[name] = uintptr(0x1000 + i*0x10)
		}
	}
	return lib
}

func (l *fakeLibrary) Lookup(name string) (uintptr, error) {
	l.lookups = append(l.lookups, name)
	addr, ok := l.symbols[name]
	if !ok {
		return 0, fmt.Errorf("The specified procedure could not be found.")
	}
	return addr, nil
}

func (l *fakeLibrary) Close() error {
	l.closed++
	return nil
}

type fakeLoader struct {
	libs   map[string]*fakeLibrary
	errs   map[string]error
	opened []string
}

func (l *fakeLoader) Open(path string) (Library, error) {
	l.opened = append(l.opened, path)
	if err, ok := l.errs[path]; ok {
		return nil, err
	}
	if lib, ok := l.libs[path]; ok {
		return lib, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
}

func stubEntryPoints() EntryPoints {
	return EntryPoints{
		Init:                    func(*uint16, uint32) bool { return true },
		IsConnected:             func(uint32) bool { return true },
		IsButtonPressed:         func(uint32) bool { return false },
		Update:                  func() {},
		Shutdown:                func() {},
		MonoSetBackground:       func(*byte) bool { return true },
		MonoSetText:             func(int32, *uint16) bool { return true },
		ColorSetBackground:      func(*byte) bool { return true },
		ColorSetTitle:           func(*uint16, int32, int32, int32) bool { return true },
		ColorSetText:            func(int32, *uint16, int32, int32, int32) bool { return true },
		ColorSetBackgroundUDK:   func(*byte, int32) int32 { return 0 },
		ColorResetBackgroundUDK: func() int32 { return 0 },
		MonoSetBackgroundUDK:    func(*byte, int32) int32 { return 0 },
		MonoResetBackgroundUDK:  func() int32 { return 0 },
	}
}

// stubBinder checks that every export was resolved and returns stubs.
func stubBinder(addrs Addresses) (EntryPoints, error) {
	for _, name := range Symbols {
		if addrs[name] == 0 {
			return EntryPoints{}, &SymbolNotFoundError{Name: name}
		}
	}
	return stubEntryPoints(), nil
}
