package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// orderGetter is implemented by results that can be addressed by order key
type orderGetter interface {
	GetOrder() int
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Print the order key if possible
		if o, ok := data.(orderGetter); ok {
			fmt.Printf("%d\n", o.GetOrder())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	if f.Quiet {
		return nil
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the formatter's mode and returns it marked as reported so a
// command can `return formatter.Fail(err)`
func (f *OutputFormatter) Fail(err error) error {
	code := ErrorCode(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestionFor(code)); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return &ReportedError{Err: err}
}

func suggestionFor(code string) string {
	switch code {
	case CodeNotFound:
		return "Use 'todos list' to see the order number of each todo"
	case CodeValidation:
		return "Titles must be a single line of at most 255 characters"
	case CodeConfig:
		return "Set storage.backend to sqlite, redis or memory, or reset the file with 'todos config init --force'"
	default:
		return ""
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		fmt.Println(s.String())
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
