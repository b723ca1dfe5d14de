package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrSyntax is returned by Parse for text it cannot read
var ErrSyntax = errors.New("invalid color syntax")

var callPattern = regexp.MustCompile(`^([a-z]+)\s*(?:\((.*)\))?$`)

// Parse reads a color written as a constructor call or a hex triplet:
//
//	white()  white(0.5)  white(0.5, 2700)
//	hsb(120, 1, 1)  hsv(120, 1, 1)  hsbk(120, 1, 1, 4000)
//	hsl(120, 1, 0.5)  rgb(255, 0, 0)  #ff0000  #f00
//
// Parse checks syntax only; pass the result through Checked to enforce ranges.
func Parse(s string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	if strings.HasPrefix(text, "#") {
		hex, err := colorful.Hex(text)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		r, g, b := hex.RGB255()
		return RGB(int(r), int(g), int(b)), nil
	}

	m := callPattern.FindStringSubmatch(text)
	if m == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	name := m[1]
	args, err := splitArgs(m[2])
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}

	switch name {
	case "white":
		switch len(args) {
		case 0:
			return DefaultWhite(), nil
		case 1:
			bri, err := parseFloat(args[0])
			if err != nil {
				return Color{}, wrapArg(s, err)
			}
			return White(bri, DefaultKelvin), nil
		case 2:
			bri, err := parseFloat(args[0])
			if err != nil {
				return Color{}, wrapArg(s, err)
			}
			k, err := parseInt(args[1])
			if err != nil {
				return Color{}, wrapArg(s, err)
			}
			return White(bri, k), nil
		}
		return Color{}, arityError(s, name, "0 to 2", len(args))

	case "hsb", "hsv", "hsl":
		if len(args) != 3 {
			return Color{}, arityError(s, name, "3", len(args))
		}
		v, err := parseFloats(args)
		if err != nil {
			return Color{}, wrapArg(s, err)
		}
		if name == "hsl" {
			return HSL(v[0], v[1], v[2]), nil
		}
		return HSB(v[0], v[1], v[2]), nil

	case "hsbk":
		if len(args) != 4 {
			return Color{}, arityError(s, name, "4", len(args))
		}
		v, err := parseFloats(args[:3])
		if err != nil {
			return Color{}, wrapArg(s, err)
		}
		k, err := parseInt(args[3])
		if err != nil {
			return Color{}, wrapArg(s, err)
		}
		return HSBK(v[0], v[1], v[2], k), nil

	case "rgb":
		if len(args) != 3 {
			return Color{}, arityError(s, name, "3", len(args))
		}
		var ch [3]int
		for i, a := range args {
			n, err := parseInt(a)
			if err != nil {
				return Color{}, wrapArg(s, err)
			}
			ch[i] = n
		}
		return RGB(ch[0], ch[1], ch[2]), nil
	}

	return Color{}, fmt.Errorf("%w: unknown color model %q", ErrSyntax, name)
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func splitArgs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("argument %d is empty", i+1)
		}
		parts[i] = p
	}
	return parts, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return v, nil
}

func wrapArg(s string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
}

func arityError(s, name, want string, got int) error {
	return fmt.Errorf("%w: %q: %s takes %s arguments, got %d", ErrSyntax, s, name, want, got)
}
