package modules

import (
	"math"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dokzlo13/hsbk/internal/color"
	"github.com/dokzlo13/hsbk/internal/huestate"
	"github.com/dokzlo13/hsbk/internal/protocol"
)

const colorTypeName = "color"

// ColorModule provides color constructors to Lua
type ColorModule struct {
	lenient bool
}

// NewColorModule creates a new color module.
// Unless lenient is set, constructors raise a Lua error for out-of-range colors.
func NewColorModule(lenient bool) *ColorModule {
	return &ColorModule{lenient: lenient}
}

// Loader is the module loader for Lua
func (m *ColorModule) Loader(L *lua.LState) int {
	RegisterColorType(L)

	mod := L.NewTable()

	L.SetField(mod, "white", L.NewFunction(m.white))
	L.SetField(mod, "hsb", L.NewFunction(m.hsb))
	L.SetField(mod, "hsv", L.NewFunction(m.hsb))
	L.SetField(mod, "hsbk", L.NewFunction(m.hsbk))
	L.SetField(mod, "hsl", L.NewFunction(m.hsl))
	L.SetField(mod, "rgb", L.NewFunction(m.rgb))
	L.SetField(mod, "from_wire", L.NewFunction(m.fromWire))
	L.SetField(mod, "parse", L.NewFunction(m.parse))
	L.SetField(mod, "equal", L.NewFunction(colorEqual))
	L.SetField(mod, "is_color", L.NewFunction(colorIsColor))

	L.SetField(mod, "DEFAULT_KELVIN", lua.LNumber(color.DefaultKelvin))
	L.SetField(mod, "MIN_KELVIN", lua.LNumber(color.MinKelvin))
	L.SetField(mod, "MAX_KELVIN", lua.LNumber(color.MaxKelvin))

	L.Push(mod)
	return 1
}

// RegisterColorType registers the color metatable
func RegisterColorType(L *lua.LState) {
	mt := L.NewTypeMetatable(colorTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), colorMethods))
	L.SetField(mt, "__eq", L.NewFunction(colorEqual))
	L.SetField(mt, "__tostring", L.NewFunction(colorToString))
}

var colorMethods = map[string]lua.LGFunction{
	"hue":        colorGetHue,
	"saturation": colorGetSaturation,
	"brightness": colorGetBrightness,
	"kelvin":     colorGetKelvin,
	"tuple":      colorTuple,
	"wire":       colorWire,
	"hue_state":  colorHueState,
	"validate":   colorValidate,
}

// PushColor creates a new color userdata and pushes it onto the stack
func PushColor(L *lua.LState, c color.Color) {
	ud := L.NewUserData()
	ud.Value = c
	L.SetMetatable(ud, L.GetTypeMetatable(colorTypeName))
	L.Push(ud)
}

// CheckColor retrieves the color at stack index n
func CheckColor(L *lua.LState, n int) color.Color {
	ud := L.CheckUserData(n)
	if c, ok := ud.Value.(color.Color); ok {
		return c
	}
	L.ArgError(n, "color expected")
	return color.Color{}
}

// toColor returns the color held by v, if any
func toColor(v lua.LValue) (color.Color, bool) {
	ud, ok := v.(*lua.LUserData)
	if !ok {
		return color.Color{}, false
	}
	c, ok := ud.Value.(color.Color)
	return c, ok
}

// push validates c unless lenient and pushes it
func (m *ColorModule) push(L *lua.LState, c color.Color) int {
	if !m.lenient {
		if err := c.Validate(); err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
	}
	PushColor(L, c)
	return 1
}

// =============================================================================
// Constructors
// =============================================================================

// color.white(brightness?, kelvin?) -> color
func (m *ColorModule) white(L *lua.LState) int {
	bri := float64(L.OptNumber(1, 1.0))
	kelvin := L.OptInt(2, color.DefaultKelvin)
	return m.push(L, color.White(bri, kelvin))
}

// color.hsb(hue, saturation, brightness) -> color
func (m *ColorModule) hsb(L *lua.LState) int {
	h := float64(L.CheckNumber(1))
	s := float64(L.CheckNumber(2))
	b := float64(L.CheckNumber(3))
	return m.push(L, color.HSB(h, s, b))
}

// color.hsbk(hue, saturation, brightness, kelvin) -> color
func (m *ColorModule) hsbk(L *lua.LState) int {
	h := float64(L.CheckNumber(1))
	s := float64(L.CheckNumber(2))
	b := float64(L.CheckNumber(3))
	k := L.CheckInt(4)
	return m.push(L, color.HSBK(h, s, b, k))
}

// color.hsl(hue, saturation, luminance) -> color
func (m *ColorModule) hsl(L *lua.LState) int {
	h := float64(L.CheckNumber(1))
	s := float64(L.CheckNumber(2))
	l := float64(L.CheckNumber(3))
	return m.push(L, color.HSL(h, s, l))
}

// color.rgb(r, g, b) -> color
func (m *ColorModule) rgb(L *lua.LState) int {
	r := L.CheckInt(1)
	g := L.CheckInt(2)
	b := L.CheckInt(3)
	return m.push(L, color.RGB(r, g, b))
}

// color.from_wire({hue=, saturation=, brightness=, kelvin=}) -> color
func (m *ColorModule) fromWire(L *lua.LState) int {
	tbl := L.CheckTable(1)

	field := func(name string) uint16 {
		v, ok := L.GetField(tbl, name).(lua.LNumber)
		if !ok || v < 0 || v > math.MaxUint16 {
			L.ArgError(1, name+" must be a number in 0..65535")
		}
		return uint16(v)
	}

	w := protocol.HSBK{
		Hue:        field("hue"),
		Saturation: field("saturation"),
		Brightness: field("brightness"),
		Kelvin:     field("kelvin"),
	}
	return m.push(L, color.FromWire(w))
}

// color.parse(text) -> color | nil, err
func (m *ColorModule) parse(L *lua.LState) int {
	text := L.CheckString(1)

	c, err := color.Parse(text)
	if err == nil && !m.lenient {
		err = c.Validate()
	}
	if err != nil {
		log.Debug().Err(err).Str("text", text).Msg("Lua color.parse failed")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	PushColor(L, c)
	return 1
}

// color.equal(a, b) -> bool
// Anything that is not a color compares unequal.
func colorEqual(L *lua.LState) int {
	a, okA := toColor(L.Get(1))
	b, okB := toColor(L.Get(2))
	L.Push(lua.LBool(okA && okB && a.Equal(b)))
	return 1
}

// color.is_color(v) -> bool
func colorIsColor(L *lua.LState) int {
	_, ok := toColor(L.Get(1))
	L.Push(lua.LBool(ok))
	return 1
}

// =============================================================================
// Methods
// =============================================================================

func colorGetHue(L *lua.LState) int {
	L.Push(lua.LNumber(CheckColor(L, 1).Hue()))
	return 1
}

func colorGetSaturation(L *lua.LState) int {
	L.Push(lua.LNumber(CheckColor(L, 1).Saturation()))
	return 1
}

func colorGetBrightness(L *lua.LState) int {
	L.Push(lua.LNumber(CheckColor(L, 1).Brightness()))
	return 1
}

func colorGetKelvin(L *lua.LState) int {
	L.Push(lua.LNumber(CheckColor(L, 1).Kelvin()))
	return 1
}

// c:tuple() -> {hue, saturation, brightness, kelvin}
func colorTuple(L *lua.LState) int {
	tbl := L.NewTable()
	for _, v := range CheckColor(L, 1).Tuple() {
		tbl.Append(lua.LNumber(v))
	}
	L.Push(tbl)
	return 1
}

// c:wire() -> {hue=, saturation=, brightness=, kelvin=}
func colorWire(L *lua.LState) int {
	w := CheckColor(L, 1).Wire()
	tbl := L.NewTable()
	L.SetField(tbl, "hue", lua.LNumber(w.Hue))
	L.SetField(tbl, "saturation", lua.LNumber(w.Saturation))
	L.SetField(tbl, "brightness", lua.LNumber(w.Brightness))
	L.SetField(tbl, "kelvin", lua.LNumber(w.Kelvin))
	L.Push(tbl)
	return 1
}

// c:hue_state() -> {on=, bri=, hue=, sat=, ct=, colormode=}
func colorHueState(L *lua.LState) int {
	s := huestate.ToState(CheckColor(L, 1))
	tbl := L.NewTable()
	L.SetField(tbl, "on", lua.LBool(s.On))
	L.SetField(tbl, "bri", lua.LNumber(s.Bri))
	L.SetField(tbl, "hue", lua.LNumber(s.Hue))
	L.SetField(tbl, "sat", lua.LNumber(s.Sat))
	L.SetField(tbl, "ct", lua.LNumber(s.Ct))
	L.SetField(tbl, "colormode", lua.LString(s.ColorMode))
	L.Push(tbl)
	return 1
}

// c:validate() -> nil | err
func colorValidate(L *lua.LState) int {
	if err := CheckColor(L, 1).Validate(); err != nil {
		L.Push(lua.LString(err.Error()))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

func colorToString(L *lua.LState) int {
	L.Push(lua.LString(CheckColor(L, 1).String()))
	return 1
}
