// Package engine orchestrates template processing: it tokenizes a template,
// resolves each token against the item store, runs modifier chains on
// numeric values and formats results for the configured locale.
//
// Two token syntaxes are supported. Inline tokens name an item, a field and
// an optional modifier chain directly in the template:
//
//	speed := 100.0
//	eng, err := engine.New([]item.Item{
//	    {ID: "speed", NumericValue: &speed, Unit: "km/h"},
//	})
//	out, err := eng.ProcessTemplate("{{speed.value:convert(mph):round(1)}}")
//	// out == "62.1"
//
// Variable-map templates keep the literal free of item references and bind
// each {{name}} placeholder through a variable map:
//
//	out, err := eng.ProcessVariables("top speed: {{v}}", map[string]engine.VariableSpec{
//	    "v": {ItemID: "speed", Source: engine.SourceNumber, Convert: "mph", Round: "round(1)"},
//	})
//
// Miss policy: a token whose item or field cannot be resolved is left in
// the output byte for byte. An undefined variable, by contrast, is a
// validation error raised before any substitution. In strict mode (the
// default) an unrecognized or inapplicable modifier aborts the whole call;
// permissive mode skips it.
//
// A ProcessTemplate call either returns a fully substituted string or an
// error, never partial output. Calls are independent: an engine is safe for
// concurrent processing as long as RegisterModifier only runs during setup.
package engine
