package pattern

import (
	"errors"
	"fmt"
)

// Sentinel errors. Concrete errors wrap these so callers can test with errors.Is.
var (
	ErrNoMatch           = errors.New("input does not match pattern")
	ErrMissingHandler    = errors.New("no handler for auxiliary group")
	ErrDuplicateToken    = errors.New("duplicate placeholder token")
	ErrInvalidExpression = errors.New("invalid compiled expression")
	ErrTemplate          = errors.New("template substitution failed")
	ErrCallMismatch      = errors.New("function does not accept result values")
)

// MatchError reports a subject string that does not satisfy a pattern.
type MatchError struct {
	// Input is the string passed to Parse.
	Input string
	// Pattern is the original template text.
	Pattern string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%q does not match pattern %q", e.Input, e.Pattern)
}

// Unwrap returns ErrNoMatch.
func (e *MatchError) Unwrap() error { return ErrNoMatch }

// MissingHandlerError reports an auxiliary capture group with no registered AuxHandler.
type MissingHandlerError struct {
	Group string
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("no handler registered for auxiliary group %q", e.Group)
}

// Unwrap returns ErrMissingHandler.
func (e *MissingHandlerError) Unwrap() error { return ErrMissingHandler }

// TemplateError reports a Replace failure for a single field.
type TemplateError struct {
	// Field is the placeholder text between the braces, if any.
	Field  string
	Reason string
}

func (e *TemplateError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("template field {%s}: %s", e.Field, e.Reason)
	}
	return "template: " + e.Reason
}

// Unwrap returns ErrTemplate.
func (e *TemplateError) Unwrap() error { return ErrTemplate }
