// Package main provides the doikit binary entry point.
// Doikit mints and maintains DOIs against the EZID registry, exchanging
// DataCite kernel-3 metadata.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/doikit/config"
	"github.com/c360studio/doikit/ezid"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "doikit"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "doikit",
		Short: "DOI registry client",
		Long: `Doikit is a client for the EZID persistent-identifier registry.

It mints DOIs, fetches and updates their DataCite kernel-3 metadata,
and checks record existence against the public resolver.

Registry credentials come from the config file or the DOIKIT_USERNAME
and DOIKIT_PASSWORD environment variables.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(getCmd(&configPath, &logLevel))
	cmd.AddCommand(mintCmd(&configPath, &logLevel))
	cmd.AddCommand(updateTargetCmd(&configPath, &logLevel))
	cmd.AddCommand(existsCmd(&configPath, &logLevel))
	cmd.AddCommand(initCmd(&logLevel))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup loads the config and builds a registry client from it.
func setup(configPath, logLevel string) (*ezid.Client, *config.Config, error) {
	cfg, logger, err := loadConfig(configPath, logLevel)
	if err != nil {
		return nil, nil, err
	}

	transport := ezid.NewHTTPTransport(cfg.Registry.Timeout, logger)
	client := ezid.NewClient(cfg.Registry.BaseURL, ezid.Credentials{
		Username: cfg.Registry.Username,
		Password: cfg.Registry.Password,
	}, transport, logger)
	client.SetResolverURL(cfg.Resolver.BaseURL)
	return client, cfg, nil
}

func loadConfig(configPath, logLevel string) (*config.Config, *slog.Logger, error) {
	// Bootstrap logger for the loader itself; the final level comes from
	// config unless overridden on the command line.
	logger := newLogger("info")
	loader := config.NewLoader(logger)

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = loader.LoadFile(configPath)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	return cfg, newLogger(level), nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func getCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <doi>",
		Short: "Fetch an identifier's landing page and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			record, err := client.Load(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("identifier: %s\n", record.Identifier)
			fmt.Printf("target: %s\n", record.LandingPage)
			out, err := yaml.Marshal(record.Metadata)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func mintCmd(configPath, logLevel *string) *cobra.Command {
	var (
		metadataPath string
		shoulder     string
	)

	cmd := &cobra.Command{
		Use:   "mint <landing-page>",
		Short: "Mint a new identifier",
		Long: `Mint registers a new DOI under the configured shoulder prefix.
Metadata is read from a YAML file mapping field keys (creators, title,
publisher, publicationyear, ...) to values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			prefix := shoulder
			if prefix == "" {
				prefix = cfg.Registry.Shoulder
			}
			if prefix == "" {
				return fmt.Errorf("no shoulder configured; set registry.shoulder or pass --shoulder")
			}

			data, err := os.ReadFile(metadataPath)
			if err != nil {
				return err
			}
			var raw map[string]any
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("parse metadata file: %w", err)
			}

			record, err := client.Mint(context.Background(), args[0], raw, prefix)
			if err != nil {
				return err
			}
			fmt.Printf("doi:%s\n", record.Identifier)
			return nil
		},
	}

	cmd.Flags().StringVarP(&metadataPath, "metadata", "m", "", "Path to YAML metadata file (required)")
	cmd.Flags().StringVar(&shoulder, "shoulder", "", "Shoulder prefix to mint under (overrides config)")
	_ = cmd.MarkFlagRequired("metadata")

	return cmd
}

func updateTargetCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "update-target <doi> <landing-page>",
		Short: "Point an identifier at a new landing page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			ctx := context.Background()
			record, err := client.Load(ctx, args[0])
			if err != nil {
				return err
			}
			if err := record.UpdateLandingPage(ctx, args[1]); err != nil {
				return err
			}
			fmt.Printf("doi:%s -> %s\n", record.Identifier, record.LandingPage)
			return nil
		},
	}
}

func initCmd(logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the user config file with defaults",
		Long: `Init writes a default config file to ~/.config/doikit/config.yaml
if none exists. Edit it to set registry credentials and the shoulder.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := *logLevel
			if level == "" {
				level = "info"
			}
			loader := config.NewLoader(newLogger(level))
			return loader.EnsureUserConfig()
		},
	}
}

func existsCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <doi>",
		Short: "Check the public resolver for an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			ok, err := client.Exists(context.Background(), args[0])
			if err != nil {
				return err
			}
			if ok {
				fmt.Println("exists")
			} else {
				fmt.Println("not found")
			}
			return nil
		},
	}
}
