package color

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		want       Color
		wantKelvin int
	}{
		{in: "white", want: DefaultWhite(), wantKelvin: 3500},
		{in: "white()", want: DefaultWhite(), wantKelvin: 3500},
		{in: "white(0.5)", want: White(0.5, 3500), wantKelvin: 3500},
		{in: "  WHITE( 0.5 , 2700 ) ", want: White(0.5, 2700), wantKelvin: 2700},
		{in: "hsb(120, 1, 1)", want: HSB(120, 1, 1), wantKelvin: 3500},
		{in: "hsv(-10,0.5,0.5)", want: HSB(350, 0.5, 0.5), wantKelvin: 3500},
		{in: "hsbk(10, 0.5, 0.5, 9000)", want: HSBK(10, 0.5, 0.5, 9000), wantKelvin: 9000},
		{in: "hsl(120, 1, 0.5)", want: HSB(120, 1, 1), wantKelvin: 3500},
		{in: "rgb(0, 0, 255)", want: HSB(240, 1, 1), wantKelvin: 3500},
		{in: "#ff0000", want: HSB(0, 1, 1), wantKelvin: 3500},
		{in: "#0F0", want: HSB(120, 1, 1), wantKelvin: 3500},
		{in: "hsbk(1e2, .5, 1, 4000)", want: HSBK(100, 0.5, 1, 4000), wantKelvin: 4000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in)
			require.NoError(t, err)
			assert.True(t, c.Equal(tt.want), "got %s want %s", c, tt.want)
			assert.Equal(t, tt.wantKelvin, c.Kelvin())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"purple(1)",
		"rgb(1, 2)",
		"rgb(1.5, 2, 3)",
		"rgb(1, 2, 3",
		"hsb(a, b, c)",
		"hsb(1,,2)",
		"hsbk(1, 1, 1, 3500.5)",
		"white(1, 2, 3)",
		"hsl",
		"#zzzzzz",
		"#ff00",
		"12345",
		"hsb(nan, 0, 0)",
		"hsbk(0, inf, 1, 3500)",
		"white(-Infinity)",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParse_OutOfRangeIsNotSyntax(t *testing.T) {
	c, err := Parse("hsb(0, 2, 1)")
	require.NoError(t, err)
	assert.ErrorIs(t, c.Validate(), ErrOutOfRange)
}

func TestParse_StringRoundTrip(t *testing.T) {
	c := HSBK(123.456, 0.25, 0.75, 5000)
	back, err := Parse(c.String())
	require.NoError(t, err)
	assert.True(t, back.Equal(c))
	assert.Equal(t, 5000, back.Kelvin())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope(") })
	assert.NotPanics(t, func() { MustParse("rgb(1, 2, 3)") })
}

func TestColor_JSON(t *testing.T) {
	data, err := json.Marshal(HSBK(10, 0.5, 0.25, 4000))
	require.NoError(t, err)
	assert.JSONEq(t, `{"hue":10,"saturation":0.5,"brightness":0.25,"kelvin":4000}`, string(data))

	var c Color
	require.NoError(t, json.Unmarshal([]byte(`{"hue":-10,"saturation":1,"brightness":1}`), &c))
	assert.Equal(t, 350.0, c.Hue(), "hue is normalized on decode")
	assert.Equal(t, DefaultKelvin, c.Kelvin(), "missing kelvin defaults")

	assert.Error(t, json.Unmarshal([]byte(`"red"`), &c))
}

func TestColor_YAML(t *testing.T) {
	src := `
red: rgb(255, 0, 0)
warm: white(0.8, 2700)
mapped:
  hue: 370
  saturation: 0.5
  brightness: 1
`
	var palette map[string]Color
	require.NoError(t, yaml.Unmarshal([]byte(src), &palette))
	require.Len(t, palette, 3)

	assert.True(t, palette["red"].Equal(HSB(0, 1, 1)))
	assert.Equal(t, 2700, palette["warm"].Kelvin())
	assert.Equal(t, 10.0, palette["mapped"].Hue())
	assert.Equal(t, DefaultKelvin, palette["mapped"].Kelvin())
}

func TestColor_YAMLErrors(t *testing.T) {
	var palette map[string]Color
	assert.ErrorIs(t, yaml.Unmarshal([]byte("bad: nope(1)"), &palette), ErrSyntax)
	assert.Error(t, yaml.Unmarshal([]byte("bad: [1, 2]"), &palette))
}

func TestColor_YAMLMarshal(t *testing.T) {
	out, err := yaml.Marshal(HSBK(10, 0.5, 0.25, 4000))
	require.NoError(t, err)

	var back Color
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, HSBK(10, 0.5, 0.25, 4000), back)
}
