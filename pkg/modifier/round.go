package modifier

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round implements the round(n) built-in: round the value to n decimal
// places using round-half-to-even semantics.
type Round struct{}

// Name returns "round".
func (Round) Name() string { return "round" }

// CanHandle claims segments named round, regardless of parameter validity.
func (Round) CanHandle(segment string) bool {
	name, _, ok := ParseSegment(segment)
	return ok && strings.EqualFold(name, "round")
}

// Apply rounds the context value. A non-integer parameter is an error; the
// chain's mode decides whether that aborts or degrades to a no-op.
func (Round) Apply(ctx *Context, segment string) error {
	_, param, _ := ParseSegment(segment)
	places, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return fmt.Errorf("round: invalid decimal places %q", param)
	}

	shift := math.Pow(10, float64(places))
	ctx.Value = math.RoundToEven(ctx.Value*shift) / shift
	return nil
}
