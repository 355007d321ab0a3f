package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// ============================================================================
// Test Helpers
// ============================================================================

type mockDataWithoutOrder struct {
	Name  string
	Value int
}

// capture redirects *target (os.Stdout or os.Stderr) while fn runs
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	fn()

	_ = w.Close()
	*target = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func decode(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	return result
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	todo := TodoOutput{ID: "abc", Title: "Buy milk", Done: true, Order: 3}

	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		if err := formatter.Success(todo); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	result := decode(t, output)
	if !result["success"].(bool) {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["title"] != "Buy milk" {
		t.Errorf("Expected data.title to be 'Buy milk', got %v", data["title"])
	}
	if data["order"].(float64) != 3 {
		t.Errorf("Expected data.order to be 3, got %v", data["order"])
	}
	if data["done"] != true {
		t.Errorf("Expected data.done to be true, got %v", data["done"])
	}
}

func TestOutputFormatter_Success_Quiet_WithOrder(t *testing.T) {
	tests := []struct {
		name       string
		data       interface{}
		wantOutput string
	}{
		{"value", TodoOutput{Order: 42}, "42"},
		{"pointer", &TodoOutput{Order: 7}, "7"},
		{"first", TodoOutput{Order: 1}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, &os.Stdout, func() {
				formatter := &OutputFormatter{Quiet: true}
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})

			if got := strings.TrimSpace(output); got != tt.wantOutput {
				t.Errorf("Expected output %q, got %q", tt.wantOutput, got)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{}
		_ = formatter.Success(TodoOutput{Title: "Walk the dog", Order: 2})
	})

	if !strings.Contains(output, "Walk the dog") {
		t.Errorf("Expected output to contain the title, got %q", output)
	}
	if !strings.Contains(output, "2") {
		t.Errorf("Expected output to contain the order, got %q", output)
	}
}

func TestOutputFormatter_QuietModePrecedence(t *testing.T) {
	t.Run("Quiet takes precedence over JSON when an order exists", func(t *testing.T) {
		output := capture(t, &os.Stdout, func() {
			formatter := &OutputFormatter{JSON: true, Quiet: true}
			_ = formatter.Success(TodoOutput{Order: 42})
		})
		if strings.TrimSpace(output) != "42" {
			t.Errorf("Expected output '42', got: %s", output)
		}
	})

	t.Run("Quiet without an order falls through to JSON", func(t *testing.T) {
		output := capture(t, &os.Stdout, func() {
			formatter := &OutputFormatter{JSON: true, Quiet: true}
			_ = formatter.Success(mockDataWithoutOrder{Name: "Test", Value: 42})
		})
		decode(t, output)
	})
}

func TestOutputFormatter_NilData(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		if err := formatter.Success(nil); err != nil {
			t.Errorf("Expected no error with nil data, got %v", err)
		}
	})

	result := decode(t, output)
	if result["data"] != nil {
		t.Errorf("Expected data to be nil, got %v", result["data"])
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		if err := formatter.Error(CodeNotFound, "todo 9 not found"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	result := decode(t, output)
	if result["success"].(bool) {
		t.Error("Expected success to be false")
	}
	errorData := result["error"].(map[string]interface{})
	if errorData["code"] != CodeNotFound {
		t.Errorf("Expected error code %s, got %v", CodeNotFound, errorData["code"])
	}
	if _, exists := errorData["suggestion"]; exists {
		t.Error("Expected no suggestion field when calling Error()")
	}
}

func TestOutputFormatter_Error_Quiet(t *testing.T) {
	output := capture(t, &os.Stderr, func() {
		formatter := &OutputFormatter{Quiet: true}
		_ = formatter.Error("TEST_ERROR", "this should be suppressed")
	})

	if output != "" {
		t.Errorf("Expected no output in quiet mode, got '%s'", output)
	}
}

func TestOutputFormatter_ErrorWithSuggestion_HumanReadable(t *testing.T) {
	output := capture(t, &os.Stderr, func() {
		formatter := &OutputFormatter{}
		_ = formatter.ErrorWithSuggestion("X", "something went wrong", "try again")
	})

	if !strings.Contains(output, "Error: something went wrong") {
		t.Errorf("Expected error line, got %q", output)
	}
	if !strings.Contains(output, "Suggestion: try again") {
		t.Errorf("Expected suggestion line, got %q", output)
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), todoservice.ErrTodoNotFound)

	var returned error
	output := capture(t, &os.Stdout, func() {
		formatter := &OutputFormatter{JSON: true}
		returned = formatter.Fail(wrapped)
	})

	if !errors.Is(returned, wrapped) {
		t.Errorf("Fail should wrap its argument, got %v", returned)
	}
	if !IsReported(returned) {
		t.Error("Fail should mark the error as reported")
	}
	errorData := decode(t, output)["error"].(map[string]interface{})
	if errorData["code"] != CodeNotFound {
		t.Errorf("Expected code %s, got %v", CodeNotFound, errorData["code"])
	}
	if errorData["suggestion"] == nil {
		t.Error("Expected a suggestion for a missing todo")
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"usage", Usagef("bad %s", "args"), ExitUsage, CodeUsage},
		{"not found", todoservice.ErrTodoNotFound, ExitNotFound, CodeNotFound},
		{"validation", &models.ValidationError{Field: "title", Err: models.ErrTitleTooLong}, ExitValidation, CodeValidation},
		{"other", errors.New("disk full"), ExitError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if tt.err != nil && ErrorCode(tt.err) != tt.code {
				t.Errorf("ErrorCode(%v) = %s, want %s", tt.err, ErrorCode(tt.err), tt.code)
			}
		})
	}
}
