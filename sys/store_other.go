//go:build !windows

package sys

type emptyStore struct{}

// DefaultStore returns a store without entries; there is no registry outside
// Windows, so resolution always falls back to the bare library name.
func DefaultStore() ConfigStore { return emptyStore{} }

func (emptyStore) ReadDefault(Root, string) (string, error) {
	return "", ErrUnsupported
}
