package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dokzlo13/hsbk/internal/app"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script.lua]",
		Short: "Run a Lua script with the color, palette and log modules",
		Long: `Run a Lua script. Without an argument the script named in the
configuration file is used.

  local color = require("color")
  local palette = require("palette")
  palette.save("sunset", color.hsl(20, 0.9, 0.55))`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := opts.cfg.Script
			if len(args) == 1 {
				script = args[0]
			}
			if script == "" {
				return errors.New("no script given and none configured")
			}

			ctx, cancel := app.SignalContext()
			defer cancel()

			return opts.withApp(func(a *app.App) error {
				rt := a.NewRuntime()
				defer rt.Close()
				return rt.RunFile(ctx, script)
			})
		},
	}
}
