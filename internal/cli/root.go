// Package cli implements the hsbk command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dokzlo13/hsbk/internal/app"
	"github.com/dokzlo13/hsbk/internal/config"
)

const defaultConfigPath = "config.yaml"

// options are the persistent flags shared by every subcommand
type options struct {
	configPath string
	memory     bool
	lenient    bool
	jsonOutput bool

	cfg *config.Config
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "hsbk",
		Short: "Convert and store smart-bulb colors",
		Long: `hsbk converts colors between RGB, HSL, HSB and the HSBK wire format
used by smart bulbs, keeps a palette of named colors, and runs Lua
scripts against both.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The default config file is optional, an explicit one is not
			optional := !cmd.Flags().Changed("config")
			cfg, err := config.Load(opts.configPath, optional)
			if err != nil {
				return err
			}
			if opts.memory {
				cfg.Database.Memory = true
			}
			if opts.lenient {
				cfg.Color.Lenient = true
			}
			opts.cfg = cfg

			SetupLogging(cfg.Log.GetLevel(), cfg.Log.UseJSON, cfg.Log.Colors, cmd.ErrOrStderr())
			log.Debug().Str("config", opts.configPath).Bool("optional", optional).Msg("Configuration loaded")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to configuration file")
	flags.BoolVar(&opts.memory, "memory", false, "Keep the palette in memory instead of SQLite")
	flags.BoolVar(&opts.lenient, "lenient", false, "Accept out-of-range colors")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of text")

	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newDecodeCmd(opts))
	root.AddCommand(newPaletteCmd(opts))
	root.AddCommand(newRunCmd(opts))

	return root
}

// withApp opens the app for the duration of fn
func (o *options) withApp(fn func(a *app.App) error) error {
	a, err := app.New(o.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close app")
		}
	}()
	return fn(a)
}
