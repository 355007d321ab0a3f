package todo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/cli"
	testcli "github.com/thenoetrevino/todos/internal/testutil/cli"
)

func TestListTodos(t *testing.T) {
	_, app := testcli.SetupCLITest(t)
	testcli.CreateTestTodo(t, app, "A", false)
	testcli.CreateTestTodo(t, app, "B", true)
	testcli.CreateTestTodo(t, app, "C", false)

	t.Run("List - default output", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{})

		require.NoError(t, err)
		assert.Contains(t, output, "A")
		assert.Contains(t, output, "[x]")
		assert.Len(t, splitLines(output), 3)
	})

	t.Run("List - quiet mode prints numbers", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1\n2\n3\n", output)
	})

	t.Run("List - remaining only", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--remaining", "--quiet"})

		require.NoError(t, err)
		assert.Equal(t, "1\n3\n", output)
	})

	t.Run("List - done only as JSON", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--done", "--json"})
		require.NoError(t, err)

		var result struct {
			Success bool             `json:"success"`
			Data    []cli.TodoOutput `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		require.Len(t, result.Data, 1)
		assert.Equal(t, "B", result.Data[0].Title)
		assert.Equal(t, 2, result.Data[0].Order)
	})

	t.Run("List - markdown", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--markdown"})

		require.NoError(t, err)
		assert.Contains(t, output, "Todos")
		assert.Contains(t, output, "C")
	})

	t.Run("List - conflicting filters", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--done", "--remaining"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})
}

func TestListTodos_Empty(t *testing.T) {
	_, app := testcli.SetupCLITest(t)

	output, err := testcli.ExecuteCLICommand(t, app, ListCmd(), []string{})

	require.NoError(t, err)
	assert.Contains(t, output, "No todos")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
