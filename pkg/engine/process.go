package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itemplate/itemplate/pkg/events"
	"github.com/itemplate/itemplate/pkg/item"
	"github.com/itemplate/itemplate/pkg/modifier"
)

// ProcessTemplate substitutes inline tokens of the form
// {{itemId.field}} or {{itemId.field:mod1:mod2}} in the template.
//
// A token whose item or field cannot be resolved is left in the output
// verbatim. A strict-mode modifier failure aborts the whole call: the result
// is an *InvalidModifierError and no partial output.
func (e *Engine) ProcessTemplate(template string) (string, error) {
	ctx := context.Background()
	correlationID := uuid.NewString()

	e.logger.Info("processing template",
		zap.String("correlation_id", correlationID),
		zap.Int("template_length", len(template)),
	)
	e.publish(ctx, events.Event{
		Type:          events.ProcessingStarted,
		CorrelationID: correlationID,
	})

	var procErr error
	output := inlinePattern.ReplaceAllStringFunc(template, func(text string) string {
		if procErr != nil {
			return text
		}

		token := parseInlineToken(text)
		substituted, err := e.renderToken(ctx, correlationID, token)
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

// renderToken resolves one inline token. A resolution miss is not an error:
// the token's own text is returned so the output keeps it verbatim.
func (e *Engine) renderToken(ctx context.Context, correlationID string, token inlineToken) (string, error) {
	it, ok := e.store.Resolve(token.ItemID)
	if !ok {
		return e.missToken(ctx, correlationID, token.Text, "item not found"), nil
	}

	value, ok := item.Field(it, token.Field)
	if !ok {
		return e.missToken(ctx, correlationID, token.Text, "field not resolvable"), nil
	}

	// Modifier chains apply to numeric values only; string values pass
	// through verbatim even when a chain is present.
	if !value.IsNumeric() {
		e.publishResolved(ctx, correlationID, token.Text, value.Text)
		return value.Text, nil
	}

	mctx := &modifier.Context{Value: *value.Number, Unit: value.Unit}
	if token.Chain != "" {
		observe := func(mod, segment string) {
			e.publish(ctx, events.Event{
				Type:          events.ModifierApplied,
				CorrelationID: correlationID,
				Token:         token.Text,
				Modifier:      mod,
				Segment:       segment,
			})
		}
		if err := e.chain.Process(mctx, token.Chain, observe); err != nil {
			return "", &InvalidModifierError{Token: token.Text, Err: err}
		}
	}

	formatted := e.formatter.Format(mctx.Value)
	e.publishResolved(ctx, correlationID, token.Text, formatted)
	return formatted, nil
}

// missToken logs and reports an unresolved token and returns its text.
func (e *Engine) missToken(ctx context.Context, correlationID, text, reason string) string {
	e.logger.Debug("token left unresolved",
		zap.String("correlation_id", correlationID),
		zap.String("token", text),
		zap.String("reason", reason),
	)
	e.publish(ctx, events.Event{
		Type:          events.TokenMissed,
		CorrelationID: correlationID,
		Token:         text,
		Error:         reason,
	})
	return text
}

// publishResolved reports a substituted token.
func (e *Engine) publishResolved(ctx context.Context, correlationID, token, output string) {
	e.publish(ctx, events.Event{
		Type:          events.TokenResolved,
		CorrelationID: correlationID,
		Token:         token,
		Output:        output,
	})
}
