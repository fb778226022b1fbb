package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┌─┐┌┬┐┌─┐┌┐┌┌┬┐┌─┐
  ├┤ │  ├┤ │││├┤ │││ │ └─┐
  └─┘┴─┘└─┘┴ ┴└─┘┘└┘ ┴ └─┘
`

// Global flags.
var (
	projectDir string
	logLevel   string
)

func main() {
	errors.AutoColor(os.Stderr)

	rootCmd := &cobra.Command{
		Use:   "elements",
		Short: "Accessible UI elements with a docs site, playground and registry",
		Long: `elements serves and publishes a catalog of accessible UI elements:
button, checkbox, collapsible, input, tabs and toggle.

  • Docs site with server-rendered stories
  • WebSocket and terminal playgrounds
  • Registry manifest built from the catalog and published to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Directory containing elements.json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides elements.json")

	rootCmd.AddCommand(
		serveCmd(),
		registryCmd(),
		storyCmd(),
		playCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// loadConfig loads elements.json from the project directory, falling back
// to defaults when there is none.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Default(projectDir)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newLogger returns the process logger at the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	return logger
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
