package usecase

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// ValidationError carries per-field messages. It matches ErrValidation and,
// when set, Cause with errors.Is.
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func newValidationError(cause error, field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}, Cause: cause}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	msg := ErrValidation.Error()
	if e.Cause != nil {
		msg = e.Cause.Error()
	}
	if len(parts) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}

type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

var (
	blankEditor  = regexp.MustCompile(`(?i)^(<p>\s*(<br\s*/?>)?\s*</p>\s*)+$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// TrimEditor trims rich text editor output. Content made only of empty
// paragraphs, as an untouched editor submits, becomes "".
func TrimEditor(s string) string {
	s = strings.TrimSpace(s)
	if blankEditor.MatchString(s) {
		return ""
	}
	return s
}
