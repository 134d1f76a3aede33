package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"unsafe"

	"github.com/bnema/gamepanel/internal/config"
	"github.com/bnema/gamepanel/lcd"
	"github.com/bnema/gamepanel/sys"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// fakeDevice is an in-process LogitechLcd with a single attached keyboard.
type fakeDevice struct {
	mu sync.Mutex

	offline int // the first offline Init calls see no device
	pressed sys.Button

	inits       int
	shutdowns   int
	updates     int
	appName     string
	texts       []string
	titles      []string
	monoFrames  [][]byte
	colorFrames [][]byte
}

func (d *fakeDevice) entryPoints() sys.EntryPoints {
	return sys.EntryPoints{
		Init: func(name *uint16, lcdType uint32) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.inits++
			d.appName = sys.UTF16PtrToString(name)
			return true
		},
		IsConnected: func(lcdType uint32) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			return d.inits > d.offline
		},
		IsButtonPressed: func(button uint32) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			return uint32(d.pressed)&button != 0
		},
		Update: func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.updates++
		},
		Shutdown: func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.shutdowns++
		},
		MonoSetBackground: func(bitmap *byte) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.monoFrames = append(d.monoFrames, bytes.Clone(unsafe.Slice(bitmap, sys.MonoFrameSize)))
			return true
		},
		MonoSetText: func(line int32, text *uint16) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.texts = append(d.texts, sys.UTF16PtrToString(text))
			return true
		},
		ColorSetBackground: func(bitmap *byte) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.colorFrames = append(d.colorFrames, bytes.Clone(unsafe.Slice(bitmap, sys.ColorFrameSize)))
			return true
		},
		ColorSetTitle: func(text *uint16, r, g, b int32) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.titles = append(d.titles, sys.UTF16PtrToString(text))
			return true
		},
		ColorSetText: func(line int32, text *uint16, r, g, b int32) bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.texts = append(d.texts, sys.UTF16PtrToString(text))
			return true
		},
		ColorSetBackgroundUDK:   func(partial *byte, size int32) int32 { return 0 },
		ColorResetBackgroundUDK: func() int32 { return 0 },
		MonoSetBackgroundUDK:    func(partial *byte, size int32) int32 { return 0 },
		MonoResetBackgroundUDK:  func() int32 { return 0 },
	}
}

// useFakeDevice routes every session opened by the commands to d. Each test
// gets its own registry so a leaked session cannot block the next test.
func useFakeDevice(t *testing.T, d *fakeDevice) *lcd.Registry {
	t.Helper()

	reg := &lcd.Registry{}
	orig := connectSession
	connectSession = func(name string, c lcd.Capability, opts ...lcd.Option) (*lcd.Session, error) {
		opts = append(opts,
			lcd.WithRegistry(reg),
			lcd.WithOpener(func() (*sys.Handle, error) {
				return sys.NewHandle(d.entryPoints(), nil)
			}),
		)
		return lcd.Connect(name, c, opts...)
	}
	t.Cleanup(func() { connectSession = orig })
	return reg
}

// testConfig writes body to a fresh config file and returns its path.
func testConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gamepanel.toml")
	if body != "" {
		if err := os.WriteFile(path, []byte(body), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

// executeCommand runs the root command with a clean viper and flag state and
// returns what it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)
	t.Cleanup(func() {
		viper.Reset()
		config.Set(nil)
		config.SetConfigPath("")
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps parsed
// values between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
