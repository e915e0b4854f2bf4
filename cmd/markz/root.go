package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	markzembed "github.com/markz-studio/markz/embed"
	"github.com/markz-studio/markz/internal/config"
	"github.com/markz-studio/markz/internal/content"
	"github.com/markz-studio/markz/internal/logging"
)

func versionString() string {
	return fmt.Sprintf("%s (%s) built %s", version, commit, date)
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "markz",
		Short: "Mark Z - digital agency portfolio page",
		Long: `markz renders the Mark Z portfolio page. It serves the page over HTTP,
rendering the date on every request, or exports every edition as static HTML.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("markz {{.Version}}\n")

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./markz.yaml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(&cfgFile),
		newBuildCmd(&cfgFile),
		newEditionsCmd(&cfgFile),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, installs the logger and loads the catalog,
// applying the configured default edition.
func setup(cmd *cobra.Command, cfgFile string) (*config.Config, *content.Catalog, error) {
	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if _, err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, nil, err
	}

	catalog, err := content.Load(markzembed.Assets)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Edition != "" {
		if catalog, err = catalog.WithDefault(cfg.Edition); err != nil {
			return nil, nil, err
		}
	}

	slog.Debug("config loaded",
		"listen", cfg.Listen,
		"edition", catalog.DefaultName(),
		"public_dir", cfg.PublicDir,
		"timezone", cfg.Timezone,
		"cache_ttl", cfg.CacheTTL.String(),
		"cache_max_size", cfg.CacheMaxSize,
		"metrics", cfg.Metrics,
	)
	return cfg, catalog, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "markz %s\n", versionString())
		},
	}
}
