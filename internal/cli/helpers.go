package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/models"
)

// TodoOutput is the shape a todo takes in command output
type TodoOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Order int    `json:"order"`
}

// NewTodoOutput converts a todo for output
func NewTodoOutput(t *models.Todo) TodoOutput {
	return TodoOutput{ID: t.ID, Title: t.Title, Done: t.Done, Order: t.Order}
}

// NewTodoOutputs converts a list of todos for output
func NewTodoOutputs(todos []*models.Todo) []TodoOutput {
	out := make([]TodoOutput, 0, len(todos))
	for _, t := range todos {
		out = append(out, NewTodoOutput(t))
	}
	return out
}

// GetOrder returns the order key used to address the todo
func (o TodoOutput) GetOrder() int {
	return o.Order
}

// String renders the todo as one line: "  3 [x] title"
func (o TodoOutput) String() string {
	return styles.RenderTodoLine(o.Order, o.Title, o.Done)
}

// ParseOrder parses a positional order key
func ParseOrder(arg string) (int, error) {
	order, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || order < models.FirstOrder {
		return 0, Usagef("invalid todo number: %q", arg)
	}
	return order, nil
}

// JoinTitle joins positional words into a single title
func JoinTitle(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// ExactArgs is cobra.ExactArgs reporting a UsageError
func ExactArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.ExactArgs(n))
}

// MinimumNArgs is cobra.MinimumNArgs reporting a UsageError
func MinimumNArgs(n int) cobra.PositionalArgs {
	return usageArgs(cobra.MinimumNArgs(n))
}

func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &UsageError{Msg: err.Error()}
		}
		return nil
	}
}

// Formatter reads the --json and --quiet flags every command carries
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (todo number only)")
}
