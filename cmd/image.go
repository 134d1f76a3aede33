package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/bnema/gamepanel/internal/logger"
	"github.com/bnema/gamepanel/lcd"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
)

var (
	imageFlags    sessionFlags
	imageTitle    string
	imageDuration time.Duration
)

var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "Show a PNG, JPEG, GIF or BMP image as the LCD background",
	Long: `Scale an image to the LCD resolution and use it as the applet background.
Mono displays receive the gray levels at 160x43, color displays a 320x240 BGRA
bitmap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, format, err := decodeImage(args[0])
		if err != nil {
			return err
		}
		logger.Debug("Decoded image", "format", format, "bounds", img.Bounds())

		ctx, stop := signalContext(cmd)
		defer stop()

		s, err := openSession(ctx, imageFlags)
		if err != nil {
			return err
		}
		defer closeSession(s)

		if err := showImage(s, img, imageTitle); err != nil {
			return err
		}

		return runFrames(ctx, s, imageDuration, func(int) error {
			if s.IsButtonPressed(quitButtons) {
				return errStopped
			}
			return nil
		})
	},
}

func decodeImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// showImage pushes img to every display class the session owns.
func showImage(s *lcd.Session, img image.Image, title string) error {
	c := s.Capability()
	if c.Has(lcd.Mono) {
		if err := s.SetMonoBackground(lcd.MonoFrameFromImage(img)); err != nil {
			return err
		}
	}
	if c.Has(lcd.Color) {
		if err := s.SetColorBackground(lcd.ColorFrameFromImage(img)); err != nil {
			return err
		}
		if title != "" {
			if err := s.SetColorTitle(title, 255, 255, 255); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	imageFlags.register(imageCmd)
	imageCmd.Flags().StringVar(&imageTitle, "title", "", "title shown above the image on color displays")
	imageCmd.Flags().DurationVar(&imageDuration, "duration", 30*time.Second, "how long to show the image, 0 for no limit")

	rootCmd.AddCommand(imageCmd)
}
