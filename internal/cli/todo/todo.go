package todo

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// Commands returns every todo subcommand, for mounting on the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		ToggleCmd(),
		EditCmd(),
		DeleteCmd(),
		ClearCmd(),
		ToggleAllCmd(),
		StatsCmd(),
	}
}

// run opens the CLI, hands it to fn and reports any error in the
// formatter's mode
func run(cmd *cobra.Command, fn func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if err := fn(ctx, cliInstance, formatter); err != nil {
		return formatter.Fail(err)
	}
	return nil
}
