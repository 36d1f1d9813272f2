package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/itemplate/itemplate/pkg/events"
	"github.com/itemplate/itemplate/pkg/item"
	"github.com/itemplate/itemplate/pkg/locale"
	"github.com/itemplate/itemplate/pkg/modifier"
)

// Engine processes templates against a fixed item set. It is built once and
// is safe for concurrent ProcessTemplate/ProcessVariables calls, provided
// RegisterModifier is only called during setup.
type Engine struct {
	store      *item.Store
	chain      *modifier.Chain
	formatter  *locale.Formatter
	logger     *zap.Logger
	publishers []events.Publisher
}

// options collects engine construction settings.
type options struct {
	localeTag  string
	mode       modifier.Mode
	logger     *zap.Logger
	publishers []events.Publisher
}

// Option configures an engine at construction time.
type Option func(*options)

// WithLocale sets the BCP-47 tag used when formatting numeric output.
// The default is "en-US".
func WithLocale(tag string) Option {
	return func(o *options) { o.localeTag = tag }
}

// WithMode sets how modifier chains treat unrecognized or inapplicable
// segments. The default is strict.
func WithMode(mode modifier.Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithLogger sets the engine logger. The default discards all output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithPublisher adds an event publisher. May be given multiple times.
func WithPublisher(p events.Publisher) Option {
	return func(o *options) { o.publishers = append(o.publishers, p) }
}

// New builds an engine over the given items. Item problems (empty or
// duplicate IDs) and an unparseable locale are construction errors.
func New(items []item.Item, opts ...Option) (*Engine, error) {
	o := &options{
		localeTag: "en-US",
		mode:      modifier.ModeStrict,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	store, err := item.NewStore(items)
	if err != nil {
		return nil, fmt.Errorf("invalid items: %w", err)
	}

	formatter, err := locale.NewFormatter(o.localeTag)
	if err != nil {
		return nil, err
	}

	return &Engine{
		store:      store,
		chain:      modifier.NewChain(o.mode, o.logger),
		formatter:  formatter,
		logger:     o.logger,
		publishers: o.publishers,
	}, nil
}

// RegisterModifier appends a modifier to the chain. Built-ins keep
// precedence: dispatch is first-match-wins in registration order. Call this
// during setup only; it must not race with in-flight processing.
func (e *Engine) RegisterModifier(m modifier.Modifier) {
	e.chain.Register(m)
	e.logger.Info("registered modifier", zap.String("modifier", m.Name()))
}

// Items returns an ordered copy of the engine's items for diagnostics.
func (e *Engine) Items() []item.Item {
	return e.store.Snapshot()
}

// publish fires an event at every registered publisher. Publisher errors
// are logged and never affect processing.
func (e *Engine) publish(ctx context.Context, ev events.Event) {
	if len(e.publishers) == 0 {
		return
	}
	ev.At = time.Now()
	for _, p := range e.publishers {
		if err := p.Publish(ctx, ev); err != nil {
			e.logger.Warn("event publish failed",
				zap.String("type", string(ev.Type)),
				zap.String("correlation_id", ev.CorrelationID),
				zap.Error(err),
			)
		}
	}
}
