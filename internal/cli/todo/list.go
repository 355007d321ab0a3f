package todo

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/models"
)

// markdownWidth is the word-wrap width for --markdown output
const markdownWidth = 80

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List todos",
		Long: `List todos in order.

Examples:
  # Everything
  todos list

  # Only what is left to do
  todos list --remaining

  # A rendered markdown checklist
  todos list --markdown
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cmd.Flags().Bool("done", false, "Only completed todos")
	cmd.Flags().Bool("remaining", false, "Only todos still to do")
	cmd.Flags().Bool("markdown", false, "Render as a markdown checklist")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	onlyDone, _ := cmd.Flags().GetBool("done")
	onlyRemaining, _ := cmd.Flags().GetBool("remaining")
	markdown, _ := cmd.Flags().GetBool("markdown")

	return run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if onlyDone && onlyRemaining {
			return cli.Usagef("--done and --remaining cannot be combined")
		}

		heading := "Todos"
		var todos []*models.Todo
		switch {
		case onlyDone:
			heading = "Done"
			todos = c.App.Todos.Done()
		case onlyRemaining:
			heading = "Remaining"
			todos = c.App.Todos.Remaining()
		default:
			todos = c.App.Todos.All()
		}

		switch {
		case f.JSON:
			return f.Success(cli.NewTodoOutputs(todos))
		case f.Quiet:
			for _, t := range todos {
				fmt.Println(t.Order)
			}
			return nil
		case markdown:
			fmt.Println(cli.RenderChecklist(heading, todos, markdownWidth))
			return nil
		}

		if len(todos) == 0 {
			fmt.Println(styles.SubtitleStyle.Render("No todos"))
			return nil
		}
		for _, t := range todos {
			fmt.Println(cli.NewTodoOutput(t).String())
		}
		return nil
	})
}
