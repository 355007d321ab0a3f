package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateTitle checks that a title is non-blank, single-line UTF-8 text of bounded length
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	if !utf8.ValidString(title) {
		return &ValidationError{Field: "title", Err: ErrInvalidTitle}
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return &ValidationError{Field: "title", Err: ErrInvalidTitle}
		}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{Field: "title", Err: ErrTitleTooLong}
	}
	return nil
}

// Validate checks every field of an unsaved todo
func (t *Todo) Validate() error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if t.Order < FirstOrder {
		return &ValidationError{Field: "order", Err: ErrInvalidOrder}
	}
	return nil
}
