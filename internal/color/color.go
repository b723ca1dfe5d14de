// Package color provides the HSBK color value used by smart bulbs.
//
// A Color holds hue in degrees, saturation and brightness as fractions and a
// white point in kelvin. Values are immutable: every constructor returns a new
// Color with its hue reduced into [0, 360), and nothing mutates it afterwards,
// so a Color can be shared freely between goroutines.
//
// Constructors are total. They trust their inputs the same way the bulbs do
// and never return errors; use Validate or Checked where input comes from
// users.
package color

import (
	"fmt"
	"math"
)

const (
	// DefaultKelvin is used by every constructor that does not take a kelvin
	DefaultKelvin = 3500
	// MinKelvin and MaxKelvin bound the white point accepted on the wire
	MinKelvin = 2500
	MaxKelvin = 10000

	// Tolerance is the relative slack used by Equal.
	// Hue is compared against Tolerance * 360 degrees.
	Tolerance = 0.001
)

// Color is an HSBK light color
type Color struct {
	hue        float64
	saturation float64
	brightness float64
	kelvin     int
}

// New builds a Color from raw components, normalizing the hue.
// Saturation, brightness and kelvin are stored as given.
func New(hue, saturation, brightness float64, kelvin int) Color {
	return Color{
		hue:        normalizeHue(hue),
		saturation: saturation,
		brightness: brightness,
		kelvin:     kelvin,
	}
}

// normalizeHue reduces h into [0, 360) using a floored modulo
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// Hue returns the hue in degrees, in [0, 360)
func (c Color) Hue() float64 { return c.hue }

// Saturation returns the saturation fraction
func (c Color) Saturation() float64 { return c.saturation }

// Brightness returns the brightness fraction
func (c Color) Brightness() float64 { return c.brightness }

// Kelvin returns the stored white point, unclamped
func (c Color) Kelvin() int { return c.kelvin }

// Tuple returns hue, saturation, brightness and kelvin in that order
func (c Color) Tuple() [4]float64 {
	return [4]float64{c.hue, c.saturation, c.brightness, float64(c.kelvin)}
}

// Equal reports whether c and other are the same color within Tolerance.
//
// The comparison is lossy on purpose: hue may differ by up to 0.36 degrees and
// saturation and brightness by up to 0.001. Kelvin is not compared at all, so
// two whites at different temperatures are Equal when their hue, saturation
// and brightness match.
func (c Color) Equal(other Color) bool {
	return math.Abs(c.hue-other.hue) < Tolerance*360 &&
		math.Abs(c.saturation-other.saturation) < Tolerance &&
		math.Abs(c.brightness-other.brightness) < Tolerance
}

// String renders the color in the text form accepted by Parse
func (c Color) String() string {
	return fmt.Sprintf("hsbk(%.2f, %.4f, %.4f, %d)", c.hue, c.saturation, c.brightness, c.kelvin)
}
