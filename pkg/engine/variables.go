package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itemplate/itemplate/pkg/events"
	"github.com/itemplate/itemplate/pkg/modifier"
)

// Source selects which item field a template variable reads.
type Source string

const (
	// SourceNumber reads the item's numeric value.
	SourceNumber Source = "number_value"

	// SourceString reads the item's string value.
	SourceString Source = "string_value"

	// SourceUnit reads the item's unit.
	SourceUnit Source = "unit"
)

// VariableSpec binds a template variable to an item field, with optional
// conversion and rounding. When both are set, conversion always runs before
// rounding; this fixed order is the variable-map contract and deliberately
// differs from inline mode, where the author orders the chain.
type VariableSpec struct {
	ItemID  string `json:"id"`
	Source  Source `json:"source"`
	Round   string `json:"round,omitempty"`
	Convert string `json:"convert,omitempty"`
}

// ProcessVariables substitutes {{name}} tokens in the literal using the
// variable map.
//
// Validation runs before any substitution: every placeholder in the literal
// must have a variable entry and every entry must name a known source.
// Violations return an error and no output. Item lookup misses during
// substitution leave the token text in place, exactly as in inline mode.
func (e *Engine) ProcessVariables(literal string, variables map[string]VariableSpec) (string, error) {
	ctx := context.Background()
	correlationID := uuid.NewString()

	if err := validateVariables(literal, variables); err != nil {
		e.logger.Error("template validation failed",
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
		return "", err
	}

	e.logger.Info("processing variable-map template",
		zap.String("correlation_id", correlationID),
		zap.Int("variables", len(variables)),
	)
	e.publish(ctx, events.Event{
		Type:          events.ProcessingStarted,
		CorrelationID: correlationID,
	})

	var procErr error
	output := variablePattern.ReplaceAllStringFunc(literal, func(text string) string {
		if procErr != nil {
			return text
		}

		name := variablePattern.FindStringSubmatch(text)[1]
		substituted, err := e.renderVariable(ctx, correlationID, text, variables[name])
		if err != nil {
			procErr = err
			return text
		}
		return substituted
	})

	if procErr != nil {
		e.logger.Error("template processing failed",
			zap.String("correlation_id", correlationID),
			zap.Error(procErr),
		)
		e.publish(ctx, events.Event{
			Type:          events.ProcessingFailed,
			CorrelationID: correlationID,
			Error:         procErr.Error(),
		})
		return "", procErr
	}

	e.publish(ctx, events.Event{
		Type:          events.ProcessingCompleted,
		CorrelationID: correlationID,
		Output:        output,
	})

	return output, nil
}

// validateVariables fails fast when the literal references variables absent
// from the map, or when a variable names an unknown source.
func validateVariables(literal string, variables map[string]VariableSpec) error {
	var missing []string
	for _, name := range variableNames(literal) {
		if _, ok := variables[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &UndefinedVariableError{Names: missing}
	}

	for name, spec := range variables {
		switch spec.Source {
		case SourceNumber, SourceString, SourceUnit:
		default:
			return fmt.Errorf("variable %q: unknown source %q", name, spec.Source)
		}
	}

	return nil
}

// renderVariable resolves one variable token against its spec. Lookup
// misses return the token text so the output keeps it verbatim.
func (e *Engine) renderVariable(ctx context.Context, correlationID, text string, spec VariableSpec) (string, error) {
	it, ok := e.store.Resolve(spec.ItemID)
	if !ok {
		return e.missToken(ctx, correlationID, text, "item not found"), nil
	}

	switch spec.Source {
	case SourceString:
		if it.StringValue == "" {
			return e.missToken(ctx, correlationID, text, "string value not set"), nil
		}
		e.publishResolved(ctx, correlationID, text, it.StringValue)
		return it.StringValue, nil

	case SourceUnit:
		if it.Unit == "" {
			return e.missToken(ctx, correlationID, text, "unit not set"), nil
		}
		e.publishResolved(ctx, correlationID, text, it.Unit)
		return it.Unit, nil

	default: // SourceNumber, guaranteed by validation
		if it.NumericValue == nil {
			return e.missToken(ctx, correlationID, text, "numeric value not set"), nil
		}

		mctx := &modifier.Context{Value: *it.NumericValue, Unit: it.Unit}
		chainText := variableChain(spec)
		if chainText != "" {
			observe := func(mod, segment string) {
				e.publish(ctx, events.Event{
					Type:          events.ModifierApplied,
					CorrelationID: correlationID,
					Token:         text,
					Modifier:      mod,
					Segment:       segment,
				})
			}
			if err := e.chain.Process(mctx, chainText, observe); err != nil {
				return "", &InvalidModifierError{Token: text, Err: err}
			}
		}

		formatted := e.formatter.Format(mctx.Value)
		e.publishResolved(ctx, correlationID, text, formatted)
		return formatted, nil
	}
}

// variableChain builds the modifier chain for a variable spec, conversion
// first, rounding second.
func variableChain(spec VariableSpec) string {
	var segments []string
	if spec.Convert != "" {
		segments = append(segments, "convert("+spec.Convert+")")
	}
	if spec.Round != "" {
		segments = append(segments, spec.Round)
	}
	return strings.Join(segments, ":")
}
