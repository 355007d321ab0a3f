package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/setup"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	clitodo "github.com/thenoetrevino/todos/internal/cli/todo"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/launcher"
	"github.com/thenoetrevino/todos/internal/logging"
)

// NewRootCmd builds the todos command tree
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "todos",
		Short: "todos - a terminal todo list",
		Long: `todos keeps a single list of todos in a local store.

Run without arguments for the interactive list, or use the subcommands
to script it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = ResolveConfig(cmd)
			if err != nil {
				return err
			}

			if err := logging.Init(cfg.Level()); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			styles.Init(cfg.ColorScheme)

			path, _ := cmd.Flags().GetString("config")
			ctx := cli.WithConfigPath(cmd.Context(), path)
			cmd.SetContext(cli.WithConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cfg)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default is $XDG_CONFIG_HOME/todos/config.yaml)")
	rootCmd.PersistentFlags().String("namespace", "", "Storage namespace for the list")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep todos in memory only")

	rootCmd.AddCommand(clitodo.Commands()...)
	rootCmd.AddCommand(setup.ConfigCmd())

	return rootCmd
}

// ResolveConfig loads the configuration and applies the persistent flags
func ResolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if namespace, _ := cmd.Flags().GetString("namespace"); namespace != "" {
		cfg.Storage.Namespace = namespace
	}
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}

	return cfg, nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
