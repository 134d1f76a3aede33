package cmd

import (
	"time"

	"github.com/bnema/gamepanel/lcd"
	"github.com/spf13/cobra"
)

var (
	blinkFlags    sessionFlags
	blinkPeriod   time.Duration
	blinkDuration time.Duration
)

var blinkCmd = &cobra.Command{
	Use:   "blink",
	Short: "Flash the LCD background on and off",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext(cmd)
		defer stop()

		s, err := openSession(ctx, blinkFlags)
		if err != nil {
			return err
		}
		defer closeSession(s)

		b := newBlinker(s, blinkPeriod)
		return runFrames(ctx, s, blinkDuration, func(int) error {
			if s.IsButtonPressed(quitButtons) {
				return errStopped
			}
			return b.tick(time.Now())
		})
	},
}

// blinker swaps between a lit and a dark background every period. The
// background is only pushed when the phase changes.
type blinker struct {
	s      *lcd.Session
	period time.Duration
	start  time.Time
	phase  int

	monoOn, monoOff   []byte
	colorOn, colorOff []byte
}

func newBlinker(s *lcd.Session, period time.Duration) *blinker {
	if period <= 0 {
		period = 500 * time.Millisecond
	}
	b := &blinker{s: s, period: period, phase: -1}

	b.monoOn, b.monoOff = lcd.NewMonoFrame(), lcd.NewMonoFrame()
	lcd.FillMono(b.monoOn, 0xff)

	b.colorOn, b.colorOff = lcd.NewColorFrame(), lcd.NewColorFrame()
	for i := range b.colorOn {
		b.colorOn[i] = 0xff
	}
	for i := 3; i < len(b.colorOff); i += 4 {
		b.colorOff[i] = 0xff
	}
	return b
}

func (b *blinker) tick(now time.Time) error {
	if b.start.IsZero() {
		b.start = now
	}
	phase := int(now.Sub(b.start)/b.period) % 2
	if phase == b.phase {
		return nil
	}
	b.phase = phase

	c := b.s.Capability()
	if c.Has(lcd.Mono) {
		frame := b.monoOff
		if phase == 0 {
			frame = b.monoOn
		}
		if err := b.s.SetMonoBackground(frame); err != nil {
			return err
		}
	}
	if c.Has(lcd.Color) {
		frame := b.colorOff
		if phase == 0 {
			frame = b.colorOn
		}
		if err := b.s.SetColorBackground(frame); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	blinkFlags.register(blinkCmd)
	blinkCmd.Flags().DurationVar(&blinkPeriod, "period", 500*time.Millisecond, "time between background changes")
	blinkCmd.Flags().DurationVar(&blinkDuration, "duration", 10*time.Second, "how long to blink, 0 for no limit")

	rootCmd.AddCommand(blinkCmd)
}
