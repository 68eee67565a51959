package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per ErrorKind. Every typed error below unwraps to its sentinel.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream error")
	ErrConfig     = errors.New("configuration error")
	ErrFormat     = errors.New("format error")
)

// ErrorKind is the closed set of failure categories a pipeline stage can report.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindUpstream   ErrorKind = "upstream"
	KindConfig     ErrorKind = "config"
	KindFormat     ErrorKind = "format"
)

func (k ErrorKind) String() string { return string(k) }

func (k ErrorKind) IsValid() bool {
	switch k {
	case KindValidation, KindNotFound, KindUpstream, KindConfig, KindFormat:
		return true
	}
	return false
}

type kinded interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the outermost typed error in err's chain.
// Errors outside the taxonomy report an empty kind.
func KindOf(err error) ErrorKind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Kind() ErrorKind { return KindValidation }
func (e *ValidationError) Unwrap() error   { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError reports a word the lexical source has no entry for.
type NotFoundError struct {
	Word string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word %q not found in dictionary", e.Word)
}

func (e *NotFoundError) Kind() ErrorKind { return KindNotFound }
func (e *NotFoundError) Unwrap() error   { return ErrNotFound }

// UpstreamError reports a failed call to an external provider: a non-success
// status, a transport failure (including timeouts), or an unusable payload.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Provider + " provider error"
	switch {
	case e.StatusCode != 0 && e.Reason != "":
		msg += fmt.Sprintf(": %d %s", e.StatusCode, e.Reason)
	case e.StatusCode != 0:
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Kind() ErrorKind { return KindUpstream }

func (e *UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}

// NewUpstreamError wraps a transport or decoding failure of the named provider.
func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

// ConfigError reports a required setting that is missing or unusable.
type ConfigError struct {
	Setting string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("config: %s is not configured", e.Setting)
	}
	return fmt.Sprintf("config: %s %s", e.Setting, e.Message)
}

func (e *ConfigError) Kind() ErrorKind { return KindConfig }
func (e *ConfigError) Unwrap() error   { return ErrConfig }

// FormatError reports provider data that does not have the expected structure.
type FormatError struct {
	Source  string
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s: invalid response format: %s", e.Source, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Kind() ErrorKind { return KindFormat }

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}
