package sys

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/gamepanel/internal/logger"
	"github.com/charmbracelet/log"
)

// DefaultCLSID is the COM class id the Logitech Gaming Software registers for
// LogitechLcd.dll.
const DefaultCLSID = "{d0e790a5-01a7-49ae-ae0b-e986bdd0c21b}"

// Root is a predefined registry hive.
type Root int

const (
	ClassesRoot Root = iota
	LocalMachine
)

func (r Root) String() string {
	switch r {
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	default:
		return fmt.Sprintf("Root(%d)", int(r))
	}
}

// ConfigStore reads the default value of a configuration key.
type ConfigStore interface {
	ReadDefault(root Root, path string) (string, error)
}

// Arch is the pointer width of the process that will load the library.
type Arch int

const (
	Arch64 Arch = iota
	Arch32
)

func (a Arch) String() string {
	if a == Arch32 {
		return "x86"
	}
	return "x64"
}

// ArchFromGOARCH maps a GOARCH value to the registry view to search.
func ArchFromGOARCH(goarch string) Arch {
	switch goarch {
	case "386", "arm", "mips", "mipsle":
		return Arch32
	default:
		return Arch64
	}
}

// ParseArch accepts "x64", "amd64", "64", "x86", "386" and "32". An empty
// string selects def.
func ParseArch(s string, def Arch) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "x64", "amd64", "arm64", "64":
		return Arch64, nil
	case "x86", "386", "32":
		return Arch32, nil
	default:
		return def, fmt.Errorf("unknown architecture %q", s)
	}
}

// Probe is one registry location that may name the library.
type Probe struct {
	Root Root
	Path string
}

func (p Probe) String() string {
	return p.Root.String() + `\` + p.Path
}

// Probes returns the registry locations searched for arch, in order.
func Probes(arch Arch, clsid string) []Probe {
	key := `CLSID\` + clsid + `\ServerBinary`
	if arch == Arch32 {
		return []Probe{
			{ClassesRoot, `Wow6432Node\` + key},
			{LocalMachine, `SOFTWARE\Classes\Wow6432Node\` + key},
			{LocalMachine, `SOFTWARE\Wow6432Node\Classes\` + key},
		}
	}
	return []Probe{
		{ClassesRoot, key},
		{LocalMachine, `SOFTWARE\Classes\` + key},
	}
}

// Location is where the library was found.
type Location struct {
	Path string
	Dir  string
}

// Resolver finds the installed library through the configuration store.
type Resolver struct {
	Store  ConfigStore
	Arch   Arch
	CLSID  string
	Logger *log.Logger
}

// NewResolver returns a resolver over the platform configuration store for
// the architecture of the running process.
func NewResolver() *Resolver {
	return &Resolver{
		Store: DefaultStore(),
		Arch:  ArchFromGOARCH(hostArch),
		CLSID: DefaultCLSID,
	}
}

// Resolve walks the probes and returns the first hit. Probe failures are not
// fatal; only a miss on every probe is reported.
func (r *Resolver) Resolve() (Location, error) {
	l := r.Logger
	if l == nil {
		l = logger.Logger
	}
	if r.Store == nil {
		return Location{}, fmt.Errorf("%w: no configuration store", ErrLibraryNotFound)
	}
	clsid := r.CLSID
	if clsid == "" {
		clsid = DefaultCLSID
	}

	probes := Probes(r.Arch, clsid)
	for i, p := range probes {
		l.Debugf("Resolver: trying probe %d: %s", i, p)

		value, err := r.Store.ReadDefault(p.Root, p.Path)
		if err != nil {
			l.Debugf("Resolver: probe %s failed: %v", p, err)
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value == "" {
			l.Debugf("Resolver: probe %s has an empty value", p)
			continue
		}

		l.Debug("Resolver: found library", "path", value, "arch", r.Arch)
		return Location{Path: value, Dir: dirOf(value)}, nil
	}
	return Location{}, fmt.Errorf("%w: %d %s registry probes failed", ErrLibraryNotFound, len(probes), r.Arch)
}

// dirOf handles backslash separators on every host.
func dirOf(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		if i == 0 {
			return path[:1]
		}
		return path[:i]
	}
	return filepath.Dir(path)
}
