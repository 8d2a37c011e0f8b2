package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/uiprefs/internal/filesystem"
	"github.com/wizzomafizzo/uiprefs/internal/prompt"
)

func createPathCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), env.store.Path())
			return err //nolint:wrapcheck // output error
		},
	}
}

func createListCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings sorted by key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			current := env.store.Load(env.ctx)
			out := cmd.OutOrStdout()
			for _, key := range current.Keys() {
				if _, err := fmt.Fprintf(out, "%s=%s\n", color.CyanString(key), current[key]); err != nil {
					return fmt.Errorf("failed to print settings: %w", err)
				}
			}
			return nil
		},
	}
}

func createGetCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			value, ok := env.store.Load(env.ctx)[args[0]]
			if !ok {
				return fmt.Errorf("setting %q not found", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err //nolint:wrapcheck // output error
		},
	}
}

func createSetCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a setting and save the file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			current, err := env.loadForUpdate()
			if err != nil {
				return err
			}
			current.Set(args[0], args[1])
			return env.save(current)
		},
	}
}

func createUnsetCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a setting and save the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			current, err := env.loadForUpdate()
			if err != nil {
				return err
			}
			if !current.Delete(args[0]) {
				_, _ = color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "setting %q was not set\n", args[0])
				return nil
			}
			return env.save(current)
		},
	}
}

func createEditCommand(opts rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit KEY",
		Short: "Interactively edit a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, opts)
			if err != nil {
				return err
			}

			current, err := env.loadForUpdate()
			if err != nil {
				return err
			}

			prompter := opts.newPrompter()
			var value string
			if existing, ok := current[args[0]]; ok {
				value, err = prompt.EditValue(prompter, args[0], existing)
			} else {
				value, err = prompt.TextInputWithPrompter(prompter, fmt.Sprintf("New value for %s:", args[0]))
			}
			filesystem.CloseQuietly(env.ctx, prompter)
			if err != nil {
				return fmt.Errorf("failed to edit %q: %w", args[0], err)
			}

			current.Set(args[0], value)
			return env.save(current)
		},
	}
}
