//go:build !(darwin || freebsd || linux || netbsd || windows)

package sys

// LibraryName is unused on platforms without a loader.
const LibraryName = "LogitechLcd"

type unsupportedLoader struct{}

// DefaultLoader returns a loader that always fails with ErrUnsupported.
func DefaultLoader() Loader { return unsupportedLoader{} }

func (unsupportedLoader) Open(string) (Library, error) {
	return nil, ErrUnsupported
}
