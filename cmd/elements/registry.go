package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/elements/internal/config"
	"github.com/vango-dev/elements/internal/errors"
	"github.com/vango-dev/elements/internal/registry"
	"github.com/vango-dev/elements/pkg/components"
)

func registryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry [command]",
		Short: "Build, inspect and publish the registry manifest",
		Long: `Build, inspect and publish registry.json, the manifest that lists
every component with its files and dependencies.

Commands:
  build      Write registry.json
  list       List components
  deps       Show the install order for components
  publish    Upload registry.json to S3

Examples:
  elements registry build
  elements registry list --internal
  elements registry deps tabs
  elements registry publish --dry-run`,
	}

	cmd.AddCommand(
		registryBuildCmd(),
		registryListCmd(),
		registryDepsCmd(),
		registryPublishCmd(),
	)
	return cmd
}

// buildManifest builds and validates the manifest of the catalog.
func buildManifest() (*config.Config, *registry.Manifest, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	m := registry.Build(cfg, components.Catalog())
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}

func registryBuildCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write registry.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, m, err := buildManifest()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.RegistryOutputPath()
			}
			if err := m.WriteFile(out); err != nil {
				return err
			}
			sum, err := m.Checksum()
			if err != nil {
				return err
			}
			success("Wrote %s", out)
			info("%s %s, %d components, sha256 %s", m.Name, m.Version, len(m.Names(false)), sum[:12])
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default from elements.json)")
	return cmd
}

func registryListCmd() *cobra.Command {
	var internal bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := buildManifest()
			if err != nil {
				return err
			}
			fmt.Println()
			for _, name := range m.Names(internal) {
				c := m.Components[name]
				desc := c.Description
				if c.Internal {
					desc = "(internal)"
				}
				fmt.Printf("  %-12s %s\n", name, desc)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&internal, "internal", false, "Include internal packages")
	return cmd
}

func registryDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <component>...",
		Short: "Show the install order for components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := buildManifest()
			if err != nil {
				return err
			}
			order, err := m.Resolve(args...)
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(order, " "))
			return nil
		},
	}
}

func registryPublishCmd() *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload registry.json to S3",
		Long: `Upload registry.json to the configured bucket, under a versioned
key and the latest key.

The published manifest at registry.url is fetched first; publishing is
refused unless the local version is newer. Use --force to skip the check.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, m, err := buildManifest()
			if err != nil {
				return err
			}
			if cfg.Registry.Bucket == "" {
				return errors.New("E144").
					WithDetail("registry.bucket is not set").
					WithSuggestion("Add a bucket to the registry section of elements.json")
			}
			logger := newLogger(cfg)
			publisher := registry.NewPublisher(registry.NewS3Client(cfg.Registry.Region),
				cfg.Registry.Bucket, cfg.Registry.Prefix, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if !force {
				remote, err := registry.Fetch(ctx, nil, cfg.Registry.URL)
				switch {
				case err != nil:
					warn("Could not fetch the published manifest; publishing anyway")
					info("%v", err)
				case !m.Newer(remote):
					return errors.New("E143").
						WithDetail(fmt.Sprintf("%s is not newer than the published %s", m.Version, remote.Version)).
						WithSuggestion("Bump version in elements.json or pass --force")
				}
			}

			if dryRun {
				for _, key := range publisher.Keys(m) {
					info("would write s3://%s/%s", cfg.Registry.Bucket, key)
				}
				return nil
			}
			if err := publisher.Publish(ctx, m); err != nil {
				return err
			}
			success("Published %s %s to s3://%s", m.Name, m.Version, cfg.Registry.Bucket)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Publish even if the version is not newer")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the keys without uploading")
	return cmd
}
