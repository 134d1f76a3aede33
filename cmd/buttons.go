package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/gamepanel/internal/config"
	"github.com/bnema/gamepanel/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var buttonsFlags sessionFlags

var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "Watch the LCD soft buttons in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext(cmd)
		defer stop()

		s, err := openSession(ctx, buttonsFlags)
		if err != nil {
			return err
		}
		defer closeSession(s)

		if err := showText(s, "Buttons", "Press a button"); err != nil {
			return err
		}

		model := ui.NewButtonMonitorModel(s, s.Capability().Buttons(), config.Get().Display.FrameRate)
		p := tea.NewProgram(model, tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("button monitor: %w", err)
		}
		return nil
	},
}

func init() {
	buttonsFlags.register(buttonsCmd)
	rootCmd.AddCommand(buttonsCmd)
}
