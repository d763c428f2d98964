package graphics

import "image/color"

// Color is stored as ARGB (0xAARRGGBB).
//
// Color implements image/color.Color so hosts that rasterize frames can
// pass it straight to the image packages.
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA returns alpha-premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}.RGBA()
}

// Hex formats the color as #RRGGBB, dropping alpha. Terminal hosts use it
// for lipgloss colors.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	buf := [7]byte{'#'}
	v := uint32(c) & 0x00FFFFFF
	for i := 6; i >= 1; i-- {
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(shift uint) uint32 {
		x := float64((uint32(a) >> shift) & 0xFF)
		y := float64((uint32(b) >> shift) & 0xFF)
		return uint32(x+(y-x)*t+0.5) << shift
	}
	return Color(mix(24) | mix(16) | mix(8) | mix(0))
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
