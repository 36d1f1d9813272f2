// Package units provides a static, pure unit-conversion table.
//
// Conversions are keyed by the ordered (source, target) unit pair and
// matched case-insensitively. An unknown pair is a silent no-op: Convert
// returns the input unchanged and CanConvert returns false, so callers that
// must distinguish the two check CanConvert first.
//
// Example usage:
//
//	mph := units.Convert(100, "km/h", "mph") // 62.1371
//	units.CanConvert("kg", "mph")            // false
//	units.Convert(100, "kg", "mph")          // 100, unchanged
//
// Supported categories: speed, fuel consumption, temperature, mass, length.
// Division-based formulas (l/100km <-> mpg) are undefined at value 0 and
// yield +Inf, which propagates to the formatted output.
package units
