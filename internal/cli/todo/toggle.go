package todo

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ToggleCmd returns the toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <number>",
		Short: "Mark a todo done, or open again",
		Long: `Flip the done flag of a todo.

Examples:
  todos toggle 3
  todos toggle 3 --json
`,
		Args: cli.ExactArgs(1),
		RunE: runToggle,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		order, err := cli.ParseOrder(args[0])
		if err != nil {
			return err
		}
		target, err := c.App.Todos.ByOrder(order)
		if err != nil {
			return fmt.Errorf("todo %d: %w", order, err)
		}

		toggled, err := c.App.Todos.Toggle(ctx, target.ID)
		if err != nil {
			return err
		}

		if f.JSON || f.Quiet {
			return f.Success(cli.NewTodoOutput(toggled))
		}

		state := "open"
		if toggled.Done {
			state = "done"
		}
		fmt.Printf("Todo %d marked %s\n", toggled.Order, state)
		return nil
	})
}
