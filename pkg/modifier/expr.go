package modifier

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
)

// Expr implements the expr(<expression>) modifier: evaluate a CEL expression
// over the current value and unit and replace the value with the numeric
// result. The expression sees two variables:
//
//	value (double) - the current context value
//	unit  (string) - the current context unit
//
// Expr is an opt-in extension, not a built-in: register it explicitly with
// Chain.Register or the engine's registration hook.
type Expr struct {
	env   *cel.Env
	cache map[string]cel.Program
	mu    sync.RWMutex
}

// NewExpr creates an expr modifier with a fresh CEL environment.
func NewExpr() *Expr {
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("value", decls.Double),
			decls.NewVar("unit", decls.String),
		),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create CEL environment: %v", err))
	}

	return &Expr{
		env:   env,
		cache: make(map[string]cel.Program),
	}
}

// Name returns "expr".
func (e *Expr) Name() string { return "expr" }

// CanHandle claims segments named expr.
func (e *Expr) CanHandle(segment string) bool {
	name, _, ok := ParseSegment(segment)
	return ok && strings.EqualFold(name, "expr")
}

// Apply evaluates the expression and stores its numeric result as the new
// context value. A non-numeric result is an error.
func (e *Expr) Apply(ctx *Context, segment string) error {
	_, expression, _ := ParseSegment(segment)
	if strings.TrimSpace(expression) == "" {
		return fmt.Errorf("expr: missing expression")
	}

	program, err := e.getProgram(expression)
	if err != nil {
		return fmt.Errorf("expr: failed to compile expression: %w", err)
	}

	out, _, err := program.Eval(map[string]interface{}{
		"value": ctx.Value,
		"unit":  ctx.Unit,
	})
	if err != nil {
		return fmt.Errorf("expr: evaluation failed: %w", err)
	}

	switch v := out.Value().(type) {
	case float64:
		ctx.Value = v
	case int64:
		ctx.Value = float64(v)
	case uint64:
		ctx.Value = float64(v)
	default:
		return fmt.Errorf("expr: expression returned %T, want a number", out.Value())
	}

	return nil
}

// getProgram gets a compiled program from cache or compiles it.
func (e *Expr) getProgram(expression string) (cel.Program, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if program, ok := e.cache[expression]; ok {
		e.mu.RUnlock()
		return program, nil
	}
	e.mu.RUnlock()

	// Compile the expression (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if program, ok := e.cache[expression]; ok {
		return program, nil
	}

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("parse error: %w", issues.Err())
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program generation error: %w", err)
	}

	e.cache[expression] = program

	return program, nil
}
