package color

import (
	"math"

	"github.com/dokzlo13/hsbk/internal/protocol"
)

// Wire encodes the color for the bulb protocol.
//
// Scaled values are truncated toward zero, never rounded: hue 180 encodes as
// 32767. Existing consumers depend on this exact encoding. Kelvin is clamped to
// [MinKelvin, MaxKelvin].
func (c Color) Wire() protocol.HSBK {
	return protocol.HSBK{
		Hue:        scaleUint16(c.hue / 360),
		Saturation: scaleUint16(c.saturation),
		Brightness: scaleUint16(c.brightness),
		Kelvin:     uint16(clampKelvin(c.kelvin)),
	}
}

// scaleUint16 maps a fraction onto 0..65535, clamping first so the cast cannot wrap
func scaleUint16(f float64) uint16 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= 1:
		return math.MaxUint16
	}
	return uint16(f * math.MaxUint16)
}

func clampKelvin(k int) int {
	return min(max(k, MinKelvin), MaxKelvin)
}
