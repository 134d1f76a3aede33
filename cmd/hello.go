package cmd

import (
	"time"

	"github.com/bnema/gamepanel/internal/logger"
	"github.com/bnema/gamepanel/lcd"
	"github.com/spf13/cobra"
)

var (
	helloFlags    sessionFlags
	helloText     string
	helloTitle    string
	helloDuration time.Duration
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Show a line of text on the LCD",
	Long: `Register an applet and show a line of text on every attached LCD.
The applet stays visible until the duration elapses, Ctrl+C is pressed,
or the last mono button / Cancel is pressed on the device.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext(cmd)
		defer stop()

		s, err := openSession(ctx, helloFlags)
		if err != nil {
			return err
		}
		defer closeSession(s)

		if err := showText(s, helloTitle, helloText); err != nil {
			return err
		}
		logger.Info("Showing text", "text", helloText, "capability", s.Capability())

		return runFrames(ctx, s, helloDuration, func(int) error {
			if s.IsButtonPressed(quitButtons) {
				return errStopped
			}
			return nil
		})
	},
}

// showText writes text to the first line of every display class the
// session owns. The color title is set as well.
func showText(s *lcd.Session, title, text string) error {
	c := s.Capability()
	if c.Has(lcd.Mono) {
		if err := s.SetMonoText(0, text); err != nil {
			return err
		}
	}
	if c.Has(lcd.Color) {
		if err := s.SetColorTitle(title, 255, 255, 255); err != nil {
			return err
		}
		if err := s.SetColorText(0, text, 0, 255, 0); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	helloFlags.register(helloCmd)
	helloCmd.Flags().StringVar(&helloText, "text", "Hello, world!", "text to display")
	helloCmd.Flags().StringVar(&helloTitle, "title", "GamePanel", "title shown on color displays")
	helloCmd.Flags().DurationVar(&helloDuration, "duration", 10*time.Second, "how long to stay on screen, 0 for no limit")

	rootCmd.AddCommand(helloCmd)
}
