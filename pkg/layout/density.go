package layout

import "math"

// Density converts logical units into device pixels.
type Density interface {
	ToDevicePixels(logical float64) int
}

// DeviceScale is a Density with a fixed device pixel ratio.
type DeviceScale float64

// ToDevicePixels scales and rounds half up. A zero scale is treated as 1.
func (s DeviceScale) ToDevicePixels(logical float64) int {
	scale := float64(s)
	if scale <= 0 {
		scale = 1
	}
	return int(math.Floor(logical*scale + 0.5))
}
