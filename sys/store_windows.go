//go:build windows

package sys

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

type registryStore struct{}

// DefaultStore returns the Windows registry.
func DefaultStore() ConfigStore { return registryStore{} }

func (registryStore) ReadDefault(root Root, path string) (string, error) {
	var hive registry.Key
	switch root {
	case ClassesRoot:
		hive = registry.CLASSES_ROOT
	case LocalMachine:
		hive = registry.LOCAL_MACHINE
	default:
		return "", fmt.Errorf("unknown registry root %v", root)
	}

	k, err := registry.OpenKey(hive, path, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open %s\\%s: %w", root, path, err)
	}
	defer k.Close()

	value, typ, err := k.GetStringValue("")
	if err != nil {
		return "", fmt.Errorf("read default value of %s\\%s: %w", root, path, err)
	}
	if typ == registry.EXPAND_SZ {
		if expanded, err := registry.ExpandString(value); err == nil {
			value = expanded
		}
	}
	return value, nil
}
