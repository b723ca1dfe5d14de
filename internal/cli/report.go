package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/amimof/huego"

	"github.com/dokzlo13/hsbk/internal/color"
	"github.com/dokzlo13/hsbk/internal/huestate"
	"github.com/dokzlo13/hsbk/internal/protocol"
)

// report is everything we know how to say about one color
type report struct {
	Name     string        `json:"name,omitempty"`
	Color    color.Color   `json:"color"`
	Text     string        `json:"text"`
	Tuple    [4]float64    `json:"tuple"`
	Wire     protocol.HSBK `json:"wire"`
	WireHex  string        `json:"wire_hex"`
	HueState huego.State   `json:"hue_state"`
	Warning  string        `json:"warning,omitempty"`
}

func newReport(name string, c color.Color) (report, error) {
	wire := c.Wire()
	payload, err := wire.MarshalBinary()
	if err != nil {
		return report{}, err
	}

	r := report{
		Name:     name,
		Color:    c,
		Text:     c.String(),
		Tuple:    c.Tuple(),
		Wire:     wire,
		WireHex:  hex.EncodeToString(payload),
		HueState: huestate.ToState(c),
	}
	if err := c.Validate(); err != nil {
		r.Warning = err.Error()
	}
	return r, nil
}

func writeReports(w io.Writer, asJSON bool, reports ...report) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Name != "" {
			fmt.Fprintf(w, "%-10s %s\n", "name", r.Name)
		}
		fmt.Fprintf(w, "%-10s %s\n", "color", r.Text)
		fmt.Fprintf(w, "%-10s %v\n", "tuple", r.Tuple)
		fmt.Fprintf(w, "%-10s %s\n", "wire", r.Wire)
		fmt.Fprintf(w, "%-10s %s\n", "wire_hex", r.WireHex)
		s := r.HueState
		fmt.Fprintf(w, "%-10s on=%t bri=%d hue=%d sat=%d ct=%d mode=%s\n",
			"hue_state", s.On, s.Bri, s.Hue, s.Sat, s.Ct, s.ColorMode)
		if r.Warning != "" {
			fmt.Fprintf(w, "%-10s %s\n", "warning", r.Warning)
		}
	}
	return nil
}
