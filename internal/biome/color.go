package biome

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is an RGB triple on the 0..255 scale. Channels may leave that range
// while blending; they are only saturated when converted for display.
type Color mgl64.Vec3

// RGB builds a Color from 0..255 channel values.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

// Lerp interpolates from a to b. t is not clamped, so values outside [0,1]
// extrapolate past the endpoints.
func Lerp(a, b Color, t float64) Color {
	va := mgl64.Vec3(a)
	return Color(va.Add(mgl64.Vec3(b).Sub(va).Mul(t)))
}

// RGBA saturates every channel to [0,255] and rounds it to the nearest byte.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 255}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
