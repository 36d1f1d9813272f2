// Package modifier implements the ordered value-modifier chain applied to
// numeric template values.
//
// A chain segment has the shape "name" or "name(parameter)". Segments are
// separated by ':' and applied strictly left to right; each one mutates a
// shared (value, unit) context that flows to the next. Dispatch is
// first-match-wins over an append-only registry, with the round and convert
// built-ins registered ahead of any user modifiers.
//
// Example usage:
//
//	chain := modifier.NewChain(modifier.ModeStrict, logger)
//	ctx := &modifier.Context{Value: 100, Unit: "km/h"}
//	err := chain.Process(ctx, "convert(mph):round(1)", nil)
//	// ctx.Value == 62.1, ctx.Unit == "mph"
//
// Built-in modifiers:
//   - round(n) - round to n decimal places, half to even
//   - convert(target) - convert to the target unit via the units table
//
// Optional modifiers:
//   - expr(<cel>) - evaluate a CEL expression over value/unit (see NewExpr)
//
// Modes: in strict mode (the default) an unrecognized segment or a segment
// whose parameter cannot be applied aborts the chain with an error naming
// the segment. In permissive mode such segments are skipped and the context
// is left unchanged.
package modifier
