package modifier

import (
	"fmt"
	"strings"

	"github.com/itemplate/itemplate/pkg/units"
)

// Convert implements the convert(target) built-in: convert the value from
// its current unit to the target unit and advance the context unit so later
// segments in the chain see the new unit.
type Convert struct{}

// Name returns "convert".
func (Convert) Name() string { return "convert" }

// CanHandle claims segments named convert, regardless of parameter validity.
func (Convert) CanHandle(segment string) bool {
	name, _, ok := ParseSegment(segment)
	return ok && strings.EqualFold(name, "convert")
}

// Apply converts the context value to the target unit. A missing target or
// an unknown (current, target) pair is an error; the chain's mode decides
// whether that aborts or degrades to a no-op.
func (Convert) Apply(ctx *Context, segment string) error {
	_, param, _ := ParseSegment(segment)
	target := strings.TrimSpace(param)
	if target == "" {
		return fmt.Errorf("convert: missing target unit")
	}
	if !units.CanConvert(ctx.Unit, target) {
		return fmt.Errorf("convert: no conversion from %q to %q", ctx.Unit, target)
	}

	ctx.Value = units.Convert(ctx.Value, ctx.Unit, target)
	ctx.Unit = target
	return nil
}
