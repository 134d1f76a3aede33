package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/gamepanel/internal/config"
	"github.com/bnema/gamepanel/internal/logger"
	"github.com/bnema/gamepanel/internal/ui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage GamePanel configuration",
	Long:  `Manage GamePanel configuration including the applet name and library location.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ui.FormatHeader("Current Configuration"))
		fmt.Fprintln(out, ui.FormatKeyValue("Config file", config.GetConfigPath()))

		fmt.Fprintln(out, "\n[applet]")
		fmt.Fprintln(out, ui.FormatKeyValue("  name", cfg.Applet.Name))
		fmt.Fprintln(out, ui.FormatKeyValue("  capability", cfg.Applet.Capability))

		fmt.Fprintln(out, "\n[library]")
		fmt.Fprintln(out, ui.FormatKeyValue("  path", orNone(cfg.Library.Path)))
		fmt.Fprintln(out, ui.FormatKeyValue("  arch", orNone(cfg.Library.Arch)))
		fmt.Fprintln(out, ui.FormatKeyValue("  clsid", cfg.Library.CLSID))

		fmt.Fprintln(out, "\n[display]")
		fmt.Fprintln(out, ui.FormatKeyValue("  frame_rate", strconv.Itoa(cfg.Display.FrameRate)))

		fmt.Fprintln(out, "\n[logging]")
		fmt.Fprintln(out, ui.FormatKeyValue("  log_level", orNone(cfg.Logging.LogLevel)))
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save current configuration to file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(); err != nil {
			return err
		}
		logger.Infof("Configuration saved to: %s", config.GetConfigPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigPath()
		if _, err := os.Stat(configPath); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				logger.Infof("Configuration file already exists at: %s", configPath)
				logger.Info("Use --force to overwrite")
				return nil
			}
		}

		cfg := *config.Get()
		if useDefaults, _ := cmd.Flags().GetBool("defaults"); !useDefaults {
			if err := configForm(&cfg); err != nil {
				return fmt.Errorf("configuration cancelled: %w", err)
			}
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		config.Set(&cfg)
		if err := config.Save(); err != nil {
			return err
		}

		logger.Infof("Configuration initialized at: %s", configPath)
		logger.Info("Run 'gamepanel probe' to check that LogitechLcd can be loaded")
		return nil
	},
}

// configForm edits c in place. Replaced in tests.
var configForm = runConfigForm

func runConfigForm(c *config.Config) error {
	arch := c.Library.Arch
	if arch == "" {
		arch = "auto"
	}
	frameRate := strconv.Itoa(c.Display.FrameRate)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Applet name").
				Description("Shown in the Logitech Gaming Software applet list").
				Value(&c.Applet.Name).
				Validate(validateAppletName),
			huh.NewSelect[string]().
				Title("Display class").
				Description("Which LCDs the applet registers for").
				Options(
					huh.NewOption("Monochrome (G15, G510, Z10)", "mono"),
					huh.NewOption("Color (G19, G19s)", "color"),
					huh.NewOption("Either", "either"),
				).
				Value(&c.Applet.Capability),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Library path").
				Description("Leave empty to locate LogitechLcd.dll through the registry").
				Value(&c.Library.Path),
			huh.NewSelect[string]().
				Title("Registry view").
				Options(
					huh.NewOption("Match this process", "auto"),
					huh.NewOption("64-bit (x64)", "x64"),
					huh.NewOption("32-bit (x86)", "x86"),
				).
				Value(&arch),
			huh.NewInput().
				Title("Frame rate").
				Description("Update calls per second, 1 to 60").
				Value(&frameRate).
				Validate(validateFrameRate),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if arch == "auto" {
		arch = ""
	}
	c.Library.Arch = arch
	c.Display.FrameRate, _ = strconv.Atoi(strings.TrimSpace(frameRate))
	return nil
}

func validateAppletName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name cannot be empty")
	}
	if strings.ContainsRune(s, 0) {
		return errors.New("name cannot contain NUL characters")
	}
	return nil
}

func validateFrameRate(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 60 {
		return errors.New("enter a number between 1 and 60")
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("force", false, "Force overwrite existing configuration")
	configInitCmd.Flags().Bool("defaults", false, "Skip the form and write the defaults")

	rootCmd.AddCommand(configCmd)
}
