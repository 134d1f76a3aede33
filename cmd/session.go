package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/gamepanel/internal/config"
	"github.com/bnema/gamepanel/internal/logger"
	"github.com/bnema/gamepanel/lcd"
	"github.com/bnema/gamepanel/sys"
	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
)

// errStopped ends a frame loop without an error, usually because a quit
// button was pressed on the device.
var errStopped = errors.New("stopped")

// quitButtons end the interactive commands.
const quitButtons = sys.MonoButton3 | sys.ColorButtonCancel

// connectSession is replaced in tests to inject a fake SDK.
var connectSession = lcd.Connect

// sessionFlags are shared by every command that registers an applet.
type sessionFlags struct {
	name       string
	capability string
	wait       time.Duration
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "applet name shown by Logitech Gaming Software (default from config)")
	cmd.Flags().StringVar(&f.capability, "capability", "", "display class: mono, color or either (default from config)")
	cmd.Flags().DurationVar(&f.wait, "wait", 0, "keep retrying for this long while no LCD is attached")
}

// openSession connects with config defaults overridden by flags. With a
// non-zero wait it retries ErrNotConnected with exponential backoff; every
// other error is returned at once.
func openSession(ctx context.Context, f sessionFlags) (*lcd.Session, error) {
	cfg := config.Get()

	name := cfg.Applet.Name
	if f.name != "" {
		name = f.name
	}
	capability := cfg.Capability()
	if f.capability != "" {
		c, err := lcd.ParseCapability(f.capability)
		if err != nil {
			return nil, err
		}
		capability = c
	}

	connect := func() (*lcd.Session, error) {
		return connectSession(name, capability,
			lcd.WithLoadOptions(cfg.LoadOptions()),
			lcd.WithLogger(logger.Logger),
		)
	}

	if f.wait <= 0 {
		return connect()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = f.wait

	var session *lcd.Session
	op := func() error {
		s, err := connect()
		if err != nil {
			if errors.Is(err, lcd.ErrNotConnected) {
				return err
			}
			return backoff.Permanent(err)
		}
		session = s
		return nil
	}
	notify := func(err error, next time.Duration) {
		logger.Info("Waiting for an LCD device", "retry_in", next.Round(time.Millisecond))
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}
	return session, nil
}

// runFrames calls draw and then Update once per frame until ctx is done or,
// when d is positive, d has elapsed. Cancellation is a normal exit.
func runFrames(ctx context.Context, s *lcd.Session, d time.Duration, draw func(frame int) error) error {
	rate := config.Get().Display.FrameRate
	if rate <= 0 {
		rate = config.DefaultConfig.Display.FrameRate
	}

	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		if draw != nil {
			if err := draw(frame); err != nil {
				if errors.Is(err, errStopped) {
					return nil
				}
				return fmt.Errorf("frame %d: %w", frame, err)
			}
		}
		s.Update()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// signalContext is cancelled on Ctrl+C or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

// closeSession logs instead of returning, for use in defers.
func closeSession(s *lcd.Session) {
	if err := s.Close(); err != nil {
		logger.Warn("Failed to close LCD session", "error", err)
	}
}
