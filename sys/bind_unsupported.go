//go:build !(darwin || freebsd || linux || netbsd || windows)

package sys

// BindPurego is unavailable without purego support.
func BindPurego(Addresses) (EntryPoints, error) {
	return EntryPoints{}, ErrUnsupported
}
