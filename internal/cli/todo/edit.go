package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <number> <title...>",
		Short: "Change a todo's title",
		Long: `Replace the title of a todo.

An empty title deletes the todo, the same way clearing a row does in the
interactive view.

Examples:
  todos edit 2 buy almond milk instead

  # Delete todo 2
  todos edit 2 ""
`,
		Args: cli.MinimumNArgs(2),
		RunE: runEdit,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		order, err := cli.ParseOrder(args[0])
		if err != nil {
			return err
		}
		target, err := c.App.Todos.ByOrder(order)
		if err != nil {
			return fmt.Errorf("todo %d: %w", order, err)
		}

		updated, err := c.App.Todos.UpdateTitle(ctx, target.ID, cli.JoinTitle(args[1:]))
		if err != nil {
			return err
		}

		// An empty title destroyed the todo
		if updated == nil {
			switch {
			case f.Quiet:
				fmt.Println(order)
			case f.JSON:
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"success": true,
					"deleted": true,
					"order":   order,
				})
			default:
				fmt.Printf("Todo %d deleted (empty title)\n", order)
			}
			return nil
		}

		if f.JSON || f.Quiet {
			return f.Success(cli.NewTodoOutput(updated))
		}
		fmt.Printf("Todo %d renamed: %s\n", updated.Order, updated.Title)
		return nil
	})
}
