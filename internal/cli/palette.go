package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dokzlo13/hsbk/internal/app"
)

func newPaletteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Manage named colors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save <name> <color>",
		Short: "Save a color under a name",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseArgs(args[1:], opts.cfg.Color.Lenient)
			if err != nil {
				return err
			}
			return opts.withApp(func(a *app.App) error {
				entry, err := a.Palette().Save(args[0], c)
				if err != nil {
					return err
				}
				log.Info().
					Str("name", entry.Name).
					Str("id", entry.ID).
					Int64("version", entry.Version).
					Msg("Saved color")

				r, err := newReport(entry.Name, entry.Color)
				if err != nil {
					return err
				}
				return writeReports(cmd.OutOrStdout(), opts.jsonOutput, r)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <name>",
		Short: "Show a saved color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				entry, err := a.Palette().Get(args[0])
				if err != nil {
					return err
				}
				if entry == nil {
					return fmt.Errorf("no color named %q", args[0])
				}
				r, err := newReport(entry.Name, entry.Color)
				if err != nil {
					return err
				}
				return writeReports(cmd.OutOrStdout(), opts.jsonOutput, r)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(func(a *app.App) error {
				entries, err := a.Palette().List()
				if err != nil {
					return err
				}

				reports := make([]report, 0, len(entries))
				for _, e := range entries {
					r, err := newReport(e.Name, e.Color)
					if err != nil {
						return err
					}
					reports = append(reports, r)
				}

				if !opts.jsonOutput {
					for _, r := range reports {
						fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", r.Name, r.Text)
					}
					return nil
				}
				return writeReports(cmd.OutOrStdout(), true, reports...)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				existed, err := a.Palette().Delete(args[0])
				if err != nil {
					return err
				}
				if !existed {
					return fmt.Errorf("no color named %q", args[0])
				}
				log.Info().Str("name", args[0]).Msg("Deleted color")
				return nil
			})
		},
	})

	return cmd
}
