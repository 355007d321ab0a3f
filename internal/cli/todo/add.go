package todo

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a todo",
		Long: `Add a todo at the end of the list.

The words are joined into a single title.

Examples:
  # Add a todo
  todos add buy oat milk

  # Add a todo that is already done
  todos add --done file taxes

  # Quiet mode prints only the new todo's number
  n=$(todos add water plants --quiet)
`,
		Args: cli.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().Bool("done", false, "Create the todo already completed")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := cli.JoinTitle(args)
	done, _ := cmd.Flags().GetBool("done")

	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		created, err := c.App.Todos.Create(ctx, models.WithTitle(title), models.WithDone(done))
		if err != nil {
			return err
		}

		out := cli.NewTodoOutput(created)
		if f.JSON || f.Quiet {
			return f.Success(out)
		}

		fmt.Printf("Created todo %d: %s\n", created.Order, created.Title)
		return nil
	})
}
