package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/site"
	"github.com/vango-dev/elements/internal/stories"
	"github.com/vango-dev/elements/pkg/style"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the docs site and playground",
		Long: `Serve the component docs, the WebSocket playground, the registry
manifest and Prometheus metrics.

Examples:
  elements serve
  elements serve --port=8080
  elements serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from elements.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from elements.json)")

	return cmd
}

func runServe(cfg *config.Config) error {
	logger := newLogger(cfg)

	theme, err := loadTheme(cfg)
	if err != nil {
		return err
	}
	style.SetSharedTheme(theme)

	set, err := stories.Load(cfg.StoriesPath())
	if err != nil {
		return err
	}

	srv, err := site.New(site.Options{
		Config:  cfg,
		Stories: set,
		Theme:   &theme,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner()
	fmt.Println("  serve")
	fmt.Println()
	success("Docs at http://%s", cfg.Address())
	info("%d stories, %d components", len(set.All()), len(set.Components()))
	fmt.Println()

	return srv.ListenAndServe(ctx)
}

// loadTheme reads the configured theme.toml, or returns the default theme.
func loadTheme(cfg *config.Config) (style.Theme, error) {
	if cfg.Theme == "" {
		return style.DefaultTheme(), nil
	}
	theme, err := style.LoadTheme(cfg.ThemePath())
	if err != nil {
		return style.Theme{}, errors.New("E103").Wrap(err).
			WithSuggestion("Check " + cfg.ThemePath() + " or remove \"theme\" from elements.json")
	}
	return theme, nil
}
