// Package protocol holds the wire-level color record exchanged with bulbs.
// Framing, headers and transport live elsewhere; this package only knows the
// 8-byte HSBK payload.
package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HSBKSize is the encoded size of an HSBK payload in bytes
const HSBKSize = 8

// ErrShortBuffer is returned when decoding fewer than HSBKSize bytes
var ErrShortBuffer = errors.New("hsbk payload too short")

// HSBK is the integer-encoded color as it travels on the wire.
// Hue, Saturation and Brightness span the full uint16 range.
type HSBK struct {
	Hue        uint16 `json:"hue"`        // 0..65535 maps to 0..360 degrees
	Saturation uint16 `json:"saturation"` // 0..65535 maps to 0..1
	Brightness uint16 `json:"brightness"` // 0..65535 maps to 0..1
	Kelvin     uint16 `json:"kelvin"`     // 2500..10000
}

// MarshalBinary encodes the payload little-endian in field order
func (h HSBK) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HSBKSize))
}

// AppendBinary appends the encoded payload to b
func (h HSBK) AppendBinary(b []byte) ([]byte, error) {
	b = binary.LittleEndian.AppendUint16(b, h.Hue)
	b = binary.LittleEndian.AppendUint16(b, h.Saturation)
	b = binary.LittleEndian.AppendUint16(b, h.Brightness)
	b = binary.LittleEndian.AppendUint16(b, h.Kelvin)
	return b, nil
}

// UnmarshalBinary decodes the first HSBKSize bytes of data.
// Trailing bytes are ignored so a caller can decode straight from a larger packet.
func (h *HSBK) UnmarshalBinary(data []byte) error {
	if len(data) < HSBKSize {
		return fmt.Errorf("%w: got %d bytes, need %d", ErrShortBuffer, len(data), HSBKSize)
	}
	h.Hue = binary.LittleEndian.Uint16(data[0:2])
	h.Saturation = binary.LittleEndian.Uint16(data[2:4])
	h.Brightness = binary.LittleEndian.Uint16(data[4:6])
	h.Kelvin = binary.LittleEndian.Uint16(data[6:8])
	return nil
}

func (h HSBK) String() string {
	return fmt.Sprintf("HSBK{hue=%d sat=%d bri=%d kelvin=%d}", h.Hue, h.Saturation, h.Brightness, h.Kelvin)
}
