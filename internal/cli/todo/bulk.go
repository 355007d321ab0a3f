package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/styles"
)

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed todo",
		Args:  cli.ExactArgs(0),
		RunE:  runClear,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		cleared, err := c.App.Todos.ClearCompleted(ctx)
		if err != nil {
			return err
		}
		return reportCount(f, "cleared", cleared, fmt.Sprintf("Cleared %d completed %s", cleared, plural(cleared)))
	})
}

// ToggleAllCmd returns the toggle-all subcommand
func ToggleAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle-all",
		Short: "Mark every todo done",
		Long: `Mark every todo done, or with --undo mark every todo open.

Examples:
  todos toggle-all
  todos toggle-all --undo
`,
		Args: cli.ExactArgs(0),
		RunE: runToggleAll,
	}

	cmd.Flags().Bool("undo", false, "Mark every todo open instead")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runToggleAll(cmd *cobra.Command, args []string) error {
	undo, _ := cmd.Flags().GetBool("undo")

	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		changed, err := c.App.Todos.ToggleAll(ctx, !undo)
		if err != nil {
			return err
		}
		state := "done"
		if undo {
			state = "open"
		}
		return reportCount(f, "changed", changed, fmt.Sprintf("Marked %d %s %s", changed, plural(changed), state))
	})
}

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count done and remaining todos",
		Args:  cli.ExactArgs(0),
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		stats := c.App.Todos.Stats()

		switch {
		case f.JSON:
			return f.Success(stats)
		case f.Quiet:
			fmt.Println(stats.Remaining)
			return nil
		}

		fmt.Println(styles.RenderCount("Total", stats.Total))
		fmt.Println(styles.RenderCount("Done", stats.Done))
		fmt.Println(styles.RenderCount("Remaining", stats.Remaining))
		return nil
	})
}

func reportCount(f *cli.OutputFormatter, key string, n int, human string) error {
	switch {
	case f.Quiet:
		fmt.Println(n)
		return nil
	case f.JSON:
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			key:       n,
		})
	default:
		fmt.Println(human)
		return nil
	}
}

func plural(n int) string {
	if n == 1 {
		return "todo"
	}
	return "todos"
}
