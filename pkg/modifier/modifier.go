package modifier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownModifier is returned in strict mode when no registered modifier
// recognizes a chain segment.
var ErrUnknownModifier = errors.New("unrecognized modifier")

// Context is the mutable value/unit pair a modifier chain operates on.
// Each modifier reads and updates it in place before the next one runs.
type Context struct {
	Value float64
	Unit  string
}

// Modifier transforms a numeric value and its unit according to a chain
// segment such as "round(2)" or "convert(mph)".
type Modifier interface {
	// Name returns the modifier's name for logging and error reporting.
	Name() string

	// CanHandle reports whether this modifier claims the given segment.
	CanHandle(segment string) bool

	// Apply transforms the context according to the segment. An error means
	// the segment was recognized but could not be applied; chain mode
	// decides whether that aborts processing or degrades to a no-op.
	Apply(ctx *Context, segment string) error
}

// Mode controls how the chain treats unrecognized or inapplicable segments.
type Mode string

const (
	// ModeStrict aborts processing on the first unrecognized or failing
	// segment. This is the default.
	ModeStrict Mode = "strict"

	// ModePermissive skips unrecognized or failing segments, leaving the
	// context unchanged.
	ModePermissive Mode = "permissive"
)

// ParseMode parses a mode name, defaulting to strict for the empty string.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", string(ModeStrict):
		return ModeStrict, nil
	case string(ModePermissive):
		return ModePermissive, nil
	default:
		return "", fmt.Errorf("unknown modifier mode %q", s)
	}
}

// Chain is an ordered, append-only modifier registry. Built-in modifiers are
// registered first, so a user modifier appended later cannot shadow a
// built-in name: dispatch is first-match-wins in registration order.
//
// Register must not be called concurrently with Process; register all
// modifiers during setup and treat the chain as read-only afterwards.
type Chain struct {
	modifiers []Modifier
	mode      Mode
	logger    *zap.Logger
}

// NewChain creates a chain with the round and convert built-ins registered.
func NewChain(mode Mode, logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Chain{
		mode:   mode,
		logger: logger,
	}
	c.Register(Round{})
	c.Register(Convert{})
	return c
}

// Mode returns the chain's segment-handling mode.
func (c *Chain) Mode() Mode {
	return c.mode
}

// Register appends a modifier to the end of the dispatch order.
func (c *Chain) Register(m Modifier) {
	c.modifiers = append(c.modifiers, m)
}

// Process splits chainText on ':' and applies each non-empty segment to the
// context, left to right. The optional observe callback is invoked after
// every successfully applied segment. In strict mode the first unrecognized
// or failing segment aborts with an error naming the segment; in permissive
// mode such segments are skipped.
func (c *Chain) Process(ctx *Context, chainText string, observe func(modifier, segment string)) error {
	for _, segment := range strings.Split(chainText, ":") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		m := c.match(segment)
		if m == nil {
			if c.mode == ModePermissive {
				c.logger.Debug("skipping unrecognized modifier segment",
					zap.String("segment", segment),
				)
				continue
			}
			return fmt.Errorf("%w: %q", ErrUnknownModifier, segment)
		}

		if err := m.Apply(ctx, segment); err != nil {
			if c.mode == ModePermissive {
				c.logger.Debug("modifier segment not applied",
					zap.String("modifier", m.Name()),
					zap.String("segment", segment),
					zap.Error(err),
				)
				continue
			}
			return fmt.Errorf("segment %q: %w", segment, err)
		}

		if observe != nil {
			observe(m.Name(), segment)
		}
	}

	return nil
}

// match returns the first registered modifier claiming the segment.
func (c *Chain) match(segment string) Modifier {
	for _, m := range c.modifiers {
		if m.CanHandle(segment) {
			return m
		}
	}
	return nil
}

// segmentPattern matches "name" or "name(parameter)" segments.
var segmentPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(?:\((.*)\))?$`)

// ParseSegment splits a chain segment into its modifier name and parameter.
// The parameter is empty for the bare "name" form.
func ParseSegment(segment string) (name, param string, ok bool) {
	groups := segmentPattern.FindStringSubmatch(segment)
	if groups == nil {
		return "", "", false
	}
	return groups[1], groups[2], true
}
