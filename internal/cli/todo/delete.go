package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// DeleteCmd returns the rm subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Long: `Delete a todo. Numbers of the other todos do not change.

Examples:
  todos rm 4
`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		order, err := cli.ParseOrder(args[0])
		if err != nil {
			return err
		}
		target, err := c.App.Todos.ByOrder(order)
		if err != nil {
			return fmt.Errorf("todo %d: %w", order, err)
		}

		if err := c.App.Todos.Destroy(ctx, target.ID); err != nil {
			return err
		}

		switch {
		case f.Quiet:
			fmt.Println(order)
		case f.JSON:
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success": true,
				"deleted": true,
				"order":   order,
				"id":      target.ID,
			})
		default:
			fmt.Printf("Deleted todo %d: %s\n", order, target.Title)
		}
		return nil
	})
}
