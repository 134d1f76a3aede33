package lcd

import (
	"image"
	"image/color"

	"github.com/bnema/gamepanel/sys"
	"golang.org/x/image/draw"
)

// NewMonoFrame returns a blank monochrome frame.
func NewMonoFrame() []byte {
	return make([]byte, sys.MonoFrameSize)
}

// NewColorFrame returns a transparent black color frame.
func NewColorFrame() []byte {
	return make([]byte, sys.ColorFrameSize)
}

// FillMono sets every pixel of frame to v.
func FillMono(frame []byte, v byte) {
	for i := range frame {
		frame[i] = v
	}
}

// SetMonoPixel lights (on) or clears the pixel at x, y. Out of range
// coordinates are ignored.
func SetMonoPixel(frame []byte, x, y int, on bool) {
	if x < 0 || y < 0 || x >= sys.MonoWidth || y >= sys.MonoHeight {
		return
	}
	v := byte(0)
	if on {
		v = 0xff
	}
	frame[y*sys.MonoWidth+x] = v
}

// SetColorPixel stores c at x, y in the SDK's BGRA layout. Out of range
// coordinates are ignored.
func SetColorPixel(frame []byte, x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= sys.ColorWidth || y >= sys.ColorHeight {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := (y*sys.ColorWidth + x) * sys.ColorBytesPerPixel
	frame[i] = n.B
	frame[i+1] = n.G
	frame[i+2] = n.R
	frame[i+3] = n.A
}

// MonoFrameFromImage scales img to 160x43 and returns its gray levels, one
// byte per pixel. The SDK lights pixels at 128 and above.
func MonoFrameFromImage(img image.Image) []byte {
	dst := image.NewGray(image.Rect(0, 0, sys.MonoWidth, sys.MonoHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	frame := NewMonoFrame()
	copy(frame, dst.Pix)
	return frame
}

// ColorFrameFromImage scales img to 320x240 and returns it in BGRA order.
func ColorFrameFromImage(img image.Image) []byte {
	dst := image.NewNRGBA(image.Rect(0, 0, sys.ColorWidth, sys.ColorHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	frame := NewColorFrame()
	for i := 0; i < len(frame); i += 4 {
		frame[i] = dst.Pix[i+2]
		frame[i+1] = dst.Pix[i+1]
		frame[i+2] = dst.Pix[i]
		frame[i+3] = dst.Pix[i+3]
	}
	return frame
}
