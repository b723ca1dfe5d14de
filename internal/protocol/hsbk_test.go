package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSBK_MarshalBinary_Layout(t *testing.T) {
	h := HSBK{Hue: 0x1234, Saturation: 0xFFFF, Brightness: 0x0001, Kelvin: 3500}

	data, err := h.MarshalBinary()
	require.NoError(t, err)

	// 3500 = 0x0DAC
	assert.Equal(t, []byte{0x34, 0x12, 0xFF, 0xFF, 0x01, 0x00, 0xAC, 0x0D}, data)
}

func TestHSBK_UnmarshalBinary(t *testing.T) {
	var h HSBK
	err := h.UnmarshalBinary([]byte{0x34, 0x12, 0xFF, 0xFF, 0x01, 0x00, 0xAC, 0x0D, 0x99})
	require.NoError(t, err)

	assert.Equal(t, HSBK{Hue: 0x1234, Saturation: 0xFFFF, Brightness: 1, Kelvin: 3500}, h)
}

func TestHSBK_UnmarshalBinary_Short(t *testing.T) {
	var h HSBK
	err := h.UnmarshalBinary([]byte{1, 2, 3})
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
	assert.Equal(t, HSBK{}, h, "failed decode must not touch the receiver")
}

func TestHSBK_AppendBinary_KeepsPrefix(t *testing.T) {
	h := HSBK{Kelvin: 9000}
	out, err := h.AppendBinary([]byte{0xAA})
	require.NoError(t, err)
	require.Len(t, out, 1+HSBKSize)
	assert.Equal(t, byte(0xAA), out[0])

	var back HSBK
	require.NoError(t, back.UnmarshalBinary(out[1:]))
	assert.Equal(t, h, back)
}

func TestHSBK_String(t *testing.T) {
	h := HSBK{Hue: 1, Saturation: 2, Brightness: 3, Kelvin: 4}
	assert.Equal(t, "HSBK{hue=1 sat=2 bri=3 kelvin=4}", h.String())
}
