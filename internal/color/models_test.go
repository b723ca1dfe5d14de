package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestWhite(t *testing.T) {
	c := White(0.4, 2700)
	assert.Equal(t, 0.0, c.Hue())
	assert.Equal(t, 0.0, c.Saturation())
	assert.Equal(t, 0.4, c.Brightness())
	assert.Equal(t, 2700, c.Kelvin())
}

func TestDefaultWhite(t *testing.T) {
	assert.Equal(t, HSBK(0, 0, 1.0, 3500), DefaultWhite())
	assert.True(t, DefaultWhite().Equal(HSBK(0, 0, 1.0, 3500)))
}

func TestHSB_DefaultsKelvin(t *testing.T) {
	c := HSB(200, 0.3, 0.6)
	assert.Equal(t, DefaultKelvin, c.Kelvin())
	assert.Equal(t, c, HSV(200, 0.3, 0.6))
	assert.Equal(t, c, HSBK(200, 0.3, 0.6, DefaultKelvin))
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		hue     float64
		sat     float64
		bri     float64
	}{
		{name: "red", r: 255, g: 0, b: 0, hue: 0, sat: 1, bri: 1},
		{name: "green", r: 0, g: 255, b: 0, hue: 120, sat: 1, bri: 1},
		{name: "blue", r: 0, g: 0, b: 255, hue: 240, sat: 1, bri: 1},
		{name: "yellow", r: 255, g: 255, b: 0, hue: 60, sat: 1, bri: 1},
		{name: "cyan", r: 0, g: 255, b: 255, hue: 180, sat: 1, bri: 1},
		{name: "magenta", r: 255, g: 0, b: 255, hue: 300, sat: 1, bri: 1},
		{name: "black", r: 0, g: 0, b: 0, hue: 0, sat: 0, bri: 0},
		{name: "white", r: 255, g: 255, b: 255, hue: 0, sat: 0, bri: 1},
		{name: "gray", r: 128, g: 128, b: 128, hue: 0, sat: 0, bri: 128.0 / 255},
		{name: "red_wraps_below_360", r: 255, g: 0, b: 1, hue: (6 - 1.0/255) * 60, sat: 1, bri: 1},
		{name: "orange", r: 255, g: 128, b: 0, hue: 128.0 / 255 * 60, sat: 1, bri: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RGB(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.hue, c.Hue(), 1e-9)
			assert.InDelta(t, tt.sat, c.Saturation(), 1e-9)
			assert.InDelta(t, tt.bri, c.Brightness(), 1e-9)
			assert.Equal(t, DefaultKelvin, c.Kelvin())
		})
	}
}

func TestRGB_BlackHasNoNaN(t *testing.T) {
	c := RGB(0, 0, 0)
	assert.False(t, math.IsNaN(c.Hue()))
	assert.False(t, math.IsNaN(c.Saturation()))
	assert.Equal(t, 0.0, c.Saturation())
	assert.Equal(t, 0.0, c.Brightness())
}

// The HSV conversion in go-colorful uses the same piecewise formula
func TestRGB_MatchesColorful(t *testing.T) {
	levels := []int{0, 1, 17, 64, 128, 200, 254, 255}

	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				c := RGB(r, g, b)
				h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()

				assert.InDelta(t, h, c.Hue(), 1e-9, "hue rgb(%d,%d,%d)", r, g, b)
				assert.InDelta(t, s, c.Saturation(), 1e-9, "sat rgb(%d,%d,%d)", r, g, b)
				assert.InDelta(t, v, c.Brightness(), 1e-9, "bri rgb(%d,%d,%d)", r, g, b)
			}
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{name: "black", h: 0, s: 0, l: 0, want: HSB(0, 0, 0)},
		{name: "black_saturated", h: 30, s: 1, l: 0, want: HSB(30, 0, 0)},
		{name: "white", h: 0, s: 0, l: 1, want: HSB(0, 0, 1)},
		{name: "pure_green", h: 120, s: 1, l: 0.5, want: HSB(120, 1, 1)},
		{name: "dark_blue", h: 240, s: 1, l: 0.25, want: HSB(240, 1, 0.5)},
		{name: "pale_red", h: 0, s: 0.5, l: 0.75, want: HSB(0, 0.5/1.75, 0.875)},
		{name: "gray", h: 90, s: 0, l: 0.5, want: HSB(90, 0, 0.5)},
		{name: "negative_hue", h: -90, s: 1, l: 0.5, want: HSB(270, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := HSL(tt.h, tt.s, tt.l)
			assert.False(t, math.IsNaN(c.Saturation()), "saturation must not be NaN")
			assert.True(t, c.Equal(tt.want), "got %s want %s", c, tt.want)
			assert.Equal(t, DefaultKelvin, c.Kelvin())
		})
	}
}

// HSL and RGB describe the same color through different models
func TestHSL_AgreesWithRGB(t *testing.T) {
	// rgb(64, 128, 191) is hsl(209.76, 127/255, 0.5)
	viaRGB := RGB(64, 128, 191)
	viaHSL := HSL(209.76, 127.0/255, 0.5)
	assert.True(t, viaRGB.Equal(viaHSL), "rgb %s hsl %s", viaRGB, viaHSL)
}
