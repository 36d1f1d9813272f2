package engine

import (
	"fmt"
	"strings"
)

// UndefinedVariableError reports variable-map placeholders that have no
// entry in the variable map. It is raised during validation, before any
// substitution happens.
type UndefinedVariableError struct {
	Names []string
}

// Error lists all undefined variable names.
func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined template variables: %s", strings.Join(e.Names, ", "))
}

// InvalidModifierError reports a strict-mode modifier failure. It names the
// token whose chain failed and wraps the chain's error, which identifies the
// offending segment.
type InvalidModifierError struct {
	Token string
	Err   error
}

// Error names the failing token and segment.
func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("token %s: %v", e.Token, e.Err)
}

// Unwrap returns the underlying chain error.
func (e *InvalidModifierError) Unwrap() error {
	return e.Err
}
