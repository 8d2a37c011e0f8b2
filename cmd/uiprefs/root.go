package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/uiprefs/internal/config"
	"github.com/wizzomafizzo/uiprefs/internal/constants"
	"github.com/wizzomafizzo/uiprefs/internal/filesystem"
	"github.com/wizzomafizzo/uiprefs/internal/logging"
	"github.com/wizzomafizzo/uiprefs/internal/prompt"
	"github.com/wizzomafizzo/uiprefs/internal/settings"
	"github.com/wizzomafizzo/uiprefs/internal/storage"
)

// rootOptions carries the process-level dependencies so tests can swap them.
type rootOptions struct {
	fs afero.Fs
	// logWriter replaces the rotating log file when set.
	logWriter   io.Writer
	newPrompter func() prompt.Prompter
}

func defaultRootOptions() rootOptions {
	return rootOptions{
		fs:          filesystem.NewOSFileSystem(),
		newPrompter: prompt.NewLinerPrompter,
	}
}

// environment is everything a subcommand needs, built from flags and config.
type environment struct {
	ctx     context.Context //nolint:containedctx // scoped to one command run
	storage *storage.Manager
	store   *settings.Store
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand(opts rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Inspect and edit persisted UI settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("home", "", "Settings home directory (default $XDG_CONFIG_HOME/uiprefs)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file")

	rootCmd.AddCommand(
		createPathCommand(opts),
		createListCommand(opts),
		createGetCommand(opts),
		createSetCommand(opts),
		createUnsetCommand(opts),
		createEditCommand(opts),
	)

	return rootCmd
}

// newEnvironment resolves config, logging and the settings store for cmd.
// Home precedence: --home flag, then config "home", then the XDG default.
func newEnvironment(cmd *cobra.Command, opts rootOptions) (*environment, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	homeFlag, err := cmd.Flags().GetString("home")
	if err != nil {
		return nil, fmt.Errorf("failed to get home flag: %w", err)
	}

	if configPath == "" {
		configPath = storage.New(opts.fs, "").GetConfigPath()
	}
	cfg, err := config.Load(opts.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	ctx, err := logging.New(cmd.Context(), opts.fs, logging.Config{
		Writer:  opts.logWriter,
		Path:    cfg.Logging.Path,
		Command: cmd.Name(),
		Level:   level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	home := homeFlag
	if home == "" {
		home = cfg.Home
	}
	manager := storage.New(opts.fs, home)

	return &environment{
		ctx:     ctx,
		storage: manager,
		store:   settings.NewStore(opts.fs, manager),
	}, nil
}

// loadForUpdate loads the current settings for a read-modify-write command.
// Unlike Store.Load it refuses to continue on a damaged file so the update does
// not silently discard its contents.
func (e *environment) loadForUpdate() (settings.Settings, error) {
	if _, err := e.storage.EnsureHomeDir(); err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}
	current, err := e.store.LoadE(e.ctx)
	if err != nil {
		return nil, fmt.Errorf("refusing to update: %w", err)
	}
	return current, nil
}

func (e *environment) save(values settings.Settings) error {
	if err := e.store.SaveE(e.ctx, values); err != nil {
		return err //nolint:wrapcheck // sentinel-wrapped by the store
	}
	return nil
}
