package color

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// fields is the serialized shape of a Color
type fields struct {
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Brightness float64 `json:"brightness" yaml:"brightness"`
	Kelvin     int     `json:"kelvin" yaml:"kelvin"`
}

// MarshalJSON implements json.Marshaler
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(fields{
		Hue:        c.hue,
		Saturation: c.saturation,
		Brightness: c.brightness,
		Kelvin:     c.kelvin,
	})
}

// UnmarshalJSON implements json.Unmarshaler. A missing kelvin becomes DefaultKelvin.
func (c *Color) UnmarshalJSON(data []byte) error {
	f := fields{Kelvin: DefaultKelvin}
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = New(f.Hue, f.Saturation, f.Brightness, f.Kelvin)
	return nil
}

// MarshalYAML implements yaml.Marshaler using the mapping form
func (c Color) MarshalYAML() (any, error) {
	return fields{
		Hue:        c.hue,
		Saturation: c.saturation,
		Brightness: c.brightness,
		Kelvin:     c.kelvin,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// It accepts a scalar in the Parse syntax or a mapping of the four fields.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		parsed, err := Parse(s)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	case yaml.MappingNode:
		f := fields{Kelvin: DefaultKelvin}
		if err := value.Decode(&f); err != nil {
			return err
		}
		*c = New(f.Hue, f.Saturation, f.Brightness, f.Kelvin)
		return nil
	}
	return fmt.Errorf("line %d: %w: expected string or mapping", value.Line, ErrSyntax)
}
