//go:build darwin || freebsd || linux || netbsd || windows

package sys

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// BindPurego registers every address into the matching EntryPoints field.
func BindPurego(addrs Addresses) (ep EntryPoints, err error) {
	defer func() {
		// RegisterFunc panics on unsupported signatures.
		if r := recover(); r != nil {
			ep, err = EntryPoints{}, fmt.Errorf("bind entry points: %v", r)
		}
	}()
	for name, fn := range ep.fields() {
		addr, ok := addrs[name]
		if !ok || addr == 0 {
			return EntryPoints{}, &SymbolNotFoundError{Name: name}
		}
		purego.RegisterFunc(fn, addr)
	}
	return ep, nil
}
