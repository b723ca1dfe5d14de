package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dokzlo13/hsbk/internal/color"
	"github.com/dokzlo13/hsbk/internal/protocol"
)

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color in every supported encoding",
		Example: `  hsbk convert "rgb(255, 128, 0)"
  hsbk convert hsl 200 0.5 0.5
  hsbk convert "#00ff80" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseArgs(args, opts.cfg.Color.Lenient)
			if err != nil {
				return err
			}
			r, err := newReport("", c)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), opts.jsonOutput, r)
		},
	}
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "decode <hex>",
		Short:   "Decode an 8-byte HSBK wire payload",
		Example: `  hsbk decode 5555ffffffffac0d`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.TrimPrefix(strings.ToLower(args[0]), "0x")
			data, err := hex.DecodeString(raw)
			if err != nil {
				return fmt.Errorf("invalid hex payload: %w", err)
			}

			var wire protocol.HSBK
			if err := wire.UnmarshalBinary(data); err != nil {
				return err
			}

			r, err := newReport("", color.FromWire(wire))
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), opts.jsonOutput, r)
		},
	}
}

// parseArgs reads a color from command arguments.
// Arguments are joined so both "hsb(1, 2, 3)" and `hsb 1 2 3` work.
func parseArgs(args []string, lenient bool) (color.Color, error) {
	text := strings.Join(args, " ")
	if len(args) > 1 && !strings.Contains(text, "(") {
		text = fmt.Sprintf("%s(%s)", args[0], strings.Join(args[1:], ", "))
	}

	c, err := color.Parse(text)
	if err != nil {
		return color.Color{}, err
	}
	if lenient {
		return c, nil
	}
	return color.Checked(c)
}
