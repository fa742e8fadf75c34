package snippets

import (
	"fmt"
	"net/http"
	"strings"
)

// SnippetError describes a failed registry lookup or an invalid entry.
type SnippetError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
}

func (e *SnippetError) Error() string {
	return e.Message
}

// Is matches errors by code so wrapped, field-specific errors still satisfy
// errors.Is against the package sentinels.
func (e *SnippetError) Is(target error) bool {
	t, ok := target.(*SnippetError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewSnippetError creates a new snippet error
func NewSnippetError(code, message, field string) *SnippetError {
	return &SnippetError{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

const (
	CodeKeyNotFound        = "KEY_NOT_FOUND"
	CodeComponentNotFound  = "COMPONENT_NOT_FOUND"
	CodeMissingField       = "MISSING_FIELD"
	CodeDuplicateComponent = "DUPLICATE_COMPONENT"
)

// Common snippet errors
var (
	ErrKeyNotFound        = NewSnippetError(CodeKeyNotFound, "snippet key not found", "key")
	ErrComponentNotFound  = NewSnippetError(CodeComponentNotFound, "component not found", "id")
	ErrMissingField       = NewSnippetError(CodeMissingField, "required snippet field is missing", "")
	ErrDuplicateComponent = NewSnippetError(CodeDuplicateComponent, "duplicate component id", "id")
)

// GetStatus implements huma.StatusError
func (e *SnippetError) GetStatus() int {
	switch e.Code {
	case CodeKeyNotFound, CodeComponentNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetHeaders implements huma.HeadersError
func (e *SnippetError) GetHeaders() map[string][]string {
	return nil
}

func newKeyNotFound(name string) *SnippetError {
	return NewSnippetError(CodeKeyNotFound,
		fmt.Sprintf("unknown snippet key %q, valid keys are: %s", name, strings.Join(KeyNames(), ", ")),
		"key")
}

func newComponentNotFound(id string) *SnippetError {
	return NewSnippetError(CodeComponentNotFound, fmt.Sprintf("component %q not found", id), "id")
}

func newMissingFields(component string, keys []Key) *SnippetError {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	msg := fmt.Sprintf("missing or empty snippet fields: %s", strings.Join(names, ", "))
	if component != "" {
		msg = fmt.Sprintf("component %q: %s", component, msg)
	}
	return NewSnippetError(CodeMissingField, msg, strings.Join(names, ","))
}
