package color

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange marks a component outside the domain the bulbs understand
var ErrOutOfRange = errors.New("color component out of range")

// Validate reports the first component that is not finite or lies outside its
// nominal range. Hue is always in range once constructed unless it is NaN.
func (c Color) Validate() error {
	if err := checkFraction("hue", c.hue/360); err != nil {
		return err
	}
	if err := checkFraction("saturation", c.saturation); err != nil {
		return err
	}
	if err := checkFraction("brightness", c.brightness); err != nil {
		return err
	}
	if c.kelvin < MinKelvin || c.kelvin > MaxKelvin {
		return fmt.Errorf("%w: kelvin %d not in [%d, %d]", ErrOutOfRange, c.kelvin, MinKelvin, MaxKelvin)
	}
	return nil
}

// Checked passes c through when it validates
func Checked(c Color) (Color, error) {
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

func checkFraction(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrOutOfRange, name)
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %g not in [0, 1]", ErrOutOfRange, name, v)
	}
	return nil
}
