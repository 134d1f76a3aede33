package cmd

import (
	"github.com/bnema/gamepanel/internal/config"
	"github.com/bnema/gamepanel/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "gamepanel",
		Short: "GamePanel - Logitech LCD applets from the command line",
		Long: `GamePanel drives the LCD of Logitech gaming keyboards and speakers through
the Logitech Gaming LCD SDK. It locates LogitechLcd.dll through the registry,
loads it at runtime and registers a small applet that can show text, images
and react to the soft buttons next to the screen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				config.SetConfigPath(configFile)
			}
			if err := config.Init(); err != nil {
				return err
			}

			level := config.Get().Logging.LogLevel
			if logLevel != "" {
				level = logLevel
			}
			if level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/gamepanel/gamepanel.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
