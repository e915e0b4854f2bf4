package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markz-studio/markz/internal/build"
	"github.com/markz-studio/markz/internal/display"
	"github.com/markz-studio/markz/internal/site"
)

func newBuildCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "build [edition...]",
		Short: "Export editions as static HTML",
		Long: `build writes index.html for the default edition and
editions/<name>/index.html for every edition (or only the named ones) into
the output directory, then copies the public directory next to them.
The printed date is the date of the build. Every page is exported with all
accordions collapsed; a static host serves that same file for any ?open=
query, so without scripts the accordion header links do not expand
anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := setup(cmd, *cfgFile)
			if err != nil {
				return err
			}

			loc, err := display.LoadLocation(cfg.Timezone)
			if err != nil {
				return err
			}
			st, err := site.New(catalog, site.Options{
				Version:   version,
				Formatter: display.NewFormatter(loc),
			})
			if err != nil {
				return err
			}

			written, err := build.Export(cmd.Context(), build.Options{
				OutDir:   cfg.OutDir,
				Site:     st,
				Editions: args,
				Public:   os.DirFS(cfg.PublicDir),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(written), cfg.OutDir)
			return nil
		},
	}
}
