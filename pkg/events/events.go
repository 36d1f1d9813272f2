package events

import (
	"context"
	"time"
)

// Type identifies what happened during template processing.
type Type string

const (
	// ProcessingStarted is emitted once per ProcessTemplate call, before
	// any token is resolved.
	ProcessingStarted Type = "processing_started"

	// TokenResolved is emitted after a token was resolved and substituted.
	TokenResolved Type = "token_resolved"

	// TokenMissed is emitted when a token's item or field could not be
	// resolved and the original token text was kept.
	TokenMissed Type = "token_missed"

	// ModifierApplied is emitted after each successfully applied modifier
	// chain segment.
	ModifierApplied Type = "modifier_applied"

	// ProcessingCompleted is emitted once per successful call.
	ProcessingCompleted Type = "processing_completed"

	// ProcessingFailed is emitted when a call aborts with an error.
	ProcessingFailed Type = "processing_failed"
)

// Event is a structured notification about one processing step. Events are
// fired synchronously on the calling goroutine in token-resolution order.
type Event struct {
	Type          Type      `json:"type"`
	CorrelationID string    `json:"correlation_id"`
	Token         string    `json:"token,omitempty"`
	Modifier      string    `json:"modifier,omitempty"`
	Segment       string    `json:"segment,omitempty"`
	Output        string    `json:"output,omitempty"`
	Error         string    `json:"error,omitempty"`
	At            time.Time `json:"at"`
}

// Publisher receives processing events. Implementations must not assume
// they influence processing: publish errors are logged by the engine and
// never change control flow or output.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, event Event) error

// Publish calls the wrapped function.
func (f PublisherFunc) Publish(ctx context.Context, event Event) error {
	return f(ctx, event)
}
