package color

import (
	"math"

	"github.com/dokzlo13/hsbk/internal/protocol"
)

// White returns an unsaturated color at the given brightness and temperature
func White(brightness float64, kelvin int) Color {
	return New(0, 0, brightness, kelvin)
}

// DefaultWhite is full brightness at DefaultKelvin
func DefaultWhite() Color {
	return White(1.0, DefaultKelvin)
}

// HSB builds a color from hue in degrees and saturation/brightness in [0, 1]
func HSB(hue, saturation, brightness float64) Color {
	return New(hue, saturation, brightness, DefaultKelvin)
}

// HSV is an alias for HSB
func HSV(hue, saturation, value float64) Color {
	return HSB(hue, saturation, value)
}

// HSBK builds a color from all four components
func HSBK(hue, saturation, brightness float64, kelvin int) Color {
	return New(hue, saturation, brightness, kelvin)
}

// HSL converts hue/saturation/luminance into a Color.
// Black (luminance 0) yields saturation 0 instead of NaN.
func HSL(hue, saturation, luminance float64) Color {
	l := luminance * 2
	if l <= 1 {
		saturation *= l
	} else {
		saturation *= 2 - l
	}

	sum := l + saturation
	brightness := sum / 2

	var s float64
	if sum != 0 {
		s = (2 * saturation) / sum
	}

	return New(hue, s, brightness, DefaultKelvin)
}

// RGB converts 8-bit channels into a Color.
// When several channels share the maximum, red wins over green and green over blue.
func RGB(red, green, blue int) Color {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	d := hi - lo

	var s float64
	if hi != 0 {
		s = d / hi
	}

	var h float64
	if d != 0 {
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}

	return New(h, s, hi, DefaultKelvin)
}

// FromWire decodes a wire struct. Kelvin is taken as is.
func FromWire(w protocol.HSBK) Color {
	return New(
		float64(w.Hue)/math.MaxUint16*360,
		float64(w.Saturation)/math.MaxUint16,
		float64(w.Brightness)/math.MaxUint16,
		int(w.Kelvin),
	)
}
