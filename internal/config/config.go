// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/gamepanel/lcd"
	"github.com/bnema/gamepanel/sys"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Applet  AppletConfig  `mapstructure:"applet"`
	Library LibraryConfig `mapstructure:"library"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AppletConfig describes how the applet registers with the SDK
type AppletConfig struct {
	Name       string `mapstructure:"name"`       // Shown in the Logitech applet list
	Capability string `mapstructure:"capability"` // mono, color or either
}

// LibraryConfig controls where LogitechLcd.dll is loaded from
type LibraryConfig struct {
	Path  string `mapstructure:"path"`  // Explicit path, skips the registry lookup
	Arch  string `mapstructure:"arch"`  // Registry view: "", "x64" or "x86"
	CLSID string `mapstructure:"clsid"` // COM class id of the SDK
}

// DisplayConfig contains rendering loop settings
type DisplayConfig struct {
	FrameRate int `mapstructure:"frame_rate"` // Update() calls per second
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

// LibraryPathEnv overrides library.path, matching the SDK's build convention.
const LibraryPathEnv = "LOGITECH_LCD"

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Applet: AppletConfig{
			Name:       "gamepanel",
			Capability: "either",
		},
		Library: LibraryConfig{
			Path:  "",
			Arch:  "",
			CLSID: sys.DefaultCLSID,
		},
		Display: DisplayConfig{
			FrameRate: 30,
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("gamepanel")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		viper.AddConfigPath(userConfigDir())
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetEnvPrefix("GAMEPANEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("applet.name", DefaultConfig.Applet.Name)
	viper.SetDefault("applet.capability", DefaultConfig.Applet.Capability)

	viper.SetDefault("library.path", DefaultConfig.Library.Path)
	viper.SetDefault("library.arch", DefaultConfig.Library.Arch)
	viper.SetDefault("library.clsid", DefaultConfig.Library.CLSID)

	viper.SetDefault("display.frame_rate", DefaultConfig.Display.FrameRate)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		// An explicit --config path may not exist yet
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if p := os.Getenv(LibraryPathEnv); p != "" {
		c.Library.Path = p
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return nil
}

// Validate checks values that would otherwise fail deep inside a command
func (c *Config) Validate() error {
	if _, err := lcd.ParseCapability(c.Applet.Capability); err != nil {
		return fmt.Errorf("applet.capability: %w", err)
	}
	if strings.ContainsRune(c.Applet.Name, 0) {
		return fmt.Errorf("applet.name: %w", lcd.ErrNullCharacter)
	}
	if _, err := sys.ParseArch(c.Library.Arch, sys.Arch64); err != nil {
		return fmt.Errorf("library.arch: %w", err)
	}
	if c.Display.FrameRate <= 0 || c.Display.FrameRate > 60 {
		return fmt.Errorf("display.frame_rate must be between 1 and 60, got %d", c.Display.FrameRate)
	}
	return nil
}

// Capability returns the parsed applet capability
func (c *Config) Capability() lcd.Capability {
	capability, err := lcd.ParseCapability(c.Applet.Capability)
	if err != nil {
		return lcd.Either
	}
	return capability
}

// LoadOptions builds the loader options for sys.Load
func (c *Config) LoadOptions() sys.LoadOptions {
	r := sys.NewResolver()
	if arch, err := sys.ParseArch(c.Library.Arch, r.Arch); err == nil {
		r.Arch = arch
	}
	if c.Library.CLSID != "" {
		r.CLSID = c.Library.CLSID
	}
	return sys.LoadOptions{
		Path:     c.Library.Path,
		Resolver: r,
	}
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		d := DefaultConfig
		return &d
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c := Get()
	viper.Set("applet", map[string]any{
		"name":       c.Applet.Name,
		"capability": c.Applet.Capability,
	})
	viper.Set("library", map[string]any{
		"path":  c.Library.Path,
		"arch":  c.Library.Arch,
		"clsid": c.Library.CLSID,
	})
	viper.Set("display.frame_rate", c.Display.FrameRate)
	viper.Set("logging.log_level", c.Logging.LogLevel)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	// Check if config file is already loaded
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	return filepath.Join(userConfigDir(), "gamepanel.toml")
}

// userConfigDir is %AppData%\gamepanel on Windows and ~/.config/gamepanel elsewhere
func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "gamepanel")
}
