// Package huestate maps colors onto the Hue bridge light state.
//
// The bridge speaks a different dialect of the same model: hue on the same
// 0..65535 scale, saturation and brightness on 0..254, and white point in
// mireds. Only the struct conversion lives here; nothing talks to a bridge.
package huestate

import (
	"math"

	"github.com/amimof/huego"

	"github.com/dokzlo13/hsbk/internal/color"
)

// Color modes reported and accepted by the bridge
const (
	ModeHS = "hs"
	ModeCT = "ct"
	ModeXY = "xy"
)

// Bridge limits
const (
	MaxBri   = 254
	MaxSat   = 254
	MinMired = 153 // ~6500K
	MaxMired = 500 // 2000K
)

// ToState converts c into a bridge light state.
// Zero brightness turns the light off. Colors with saturation below
// color.Tolerance are sent as color temperature.
func ToState(c color.Color) huego.State {
	wire := c.Wire()

	state := huego.State{}
	if wire.Brightness == 0 {
		state.On = false
		return state
	}

	state.On = true
	state.Bri = max(1, scale254(c.Brightness()))

	if c.Saturation() < color.Tolerance {
		state.ColorMode = ModeCT
		state.Ct = KelvinToMired(int(wire.Kelvin))
		return state
	}

	state.ColorMode = ModeHS
	state.Hue = wire.Hue
	state.Sat = scale254(c.Saturation())
	return state
}

// FromState reads a bridge light state back into a Color.
// An off light is black. The xy mode is read through the hue and sat fields,
// which the bridge keeps populated for every color mode.
func FromState(s huego.State) color.Color {
	bri := float64(s.Bri) / MaxBri
	if !s.On {
		bri = 0
	}

	if s.ColorMode == ModeCT {
		kelvin := color.DefaultKelvin
		if s.Ct > 0 {
			kelvin = MiredToKelvin(s.Ct)
		}
		return color.White(bri, kelvin)
	}

	return color.HSBK(
		float64(s.Hue)/math.MaxUint16*360,
		float64(s.Sat)/MaxSat,
		bri,
		color.DefaultKelvin,
	)
}

// KelvinToMired converts a white point to mireds within the bridge range
func KelvinToMired(kelvin int) uint16 {
	if kelvin <= 0 {
		return MaxMired
	}
	m := 1_000_000 / kelvin
	return uint16(min(max(m, MinMired), MaxMired))
}

// MiredToKelvin converts mireds to kelvin, rounded to the nearest degree
func MiredToKelvin(mired uint16) int {
	if mired == 0 {
		return color.DefaultKelvin
	}
	return int(math.Round(1_000_000 / float64(mired)))
}

// scale254 maps a fraction onto 0..254, truncating like the wire encoding
func scale254(f float64) uint8 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 1:
		return MaxBri
	}
	return uint8(f * MaxBri)
}
