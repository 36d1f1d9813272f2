package units

import (
	"sort"
	"strings"
)

// Formula converts a numeric value from one unit to another.
type Formula func(value float64) float64

// pair is a normalized (source unit, target unit) lookup key.
type pair struct {
	from string
	to   string
}

// table maps ordered unit pairs to conversion formulas. Keys are stored
// lower-case; lookups normalize the same way.
var table = map[pair]Formula{
	// Speed
	{"km/h", "mph"}: func(v float64) float64 { return v * 0.621371 },
	{"mph", "km/h"}: func(v float64) float64 { return v / 0.621371 },
	{"km/h", "m/s"}: func(v float64) float64 { return v / 3.6 },
	{"m/s", "km/h"}: func(v float64) float64 { return v * 3.6 },

	// Fuel consumption. The formula is its own inverse; at value 0 the
	// division yields +Inf, which propagates per IEEE 754.
	{"l/100km", "mpg"}: func(v float64) float64 { return 235.214583 / v },
	{"mpg", "l/100km"}: func(v float64) float64 { return 235.214583 / v },

	// Temperature
	{"celsius", "fahrenheit"}: func(v float64) float64 { return v*9/5 + 32 },
	{"fahrenheit", "celsius"}: func(v float64) float64 { return (v - 32) * 5 / 9 },
	{"celsius", "kelvin"}:     func(v float64) float64 { return v + 273.15 },
	{"kelvin", "celsius"}:     func(v float64) float64 { return v - 273.15 },

	// Mass
	{"kg", "lb"}: func(v float64) float64 { return v * 2.20462262 },
	{"lb", "kg"}: func(v float64) float64 { return v / 2.20462262 },
	{"g", "oz"}:  func(v float64) float64 { return v * 0.03527396 },
	{"oz", "g"}:  func(v float64) float64 { return v / 0.03527396 },

	// Length
	{"km", "mi"}: func(v float64) float64 { return v * 0.621371 },
	{"mi", "km"}: func(v float64) float64 { return v / 0.621371 },
	{"m", "ft"}:  func(v float64) float64 { return v * 3.2808399 },
	{"ft", "m"}:  func(v float64) float64 { return v / 3.2808399 },
	{"cm", "in"}: func(v float64) float64 { return v * 0.393700787 },
	{"in", "cm"}: func(v float64) float64 { return v / 0.393700787 },
}

// Convert converts value from one unit to another. Unit names are matched
// case-insensitively. When no conversion is known for the ordered pair the
// input value is returned unchanged; use CanConvert to distinguish a real
// conversion from that fallback.
func Convert(value float64, from, to string) float64 {
	f, ok := table[pair{strings.ToLower(from), strings.ToLower(to)}]
	if !ok {
		return value
	}
	return f(value)
}

// CanConvert reports whether a conversion is known for the ordered unit pair.
func CanConvert(from, to string) bool {
	_, ok := table[pair{strings.ToLower(from), strings.ToLower(to)}]
	return ok
}

// AvailableTargets returns the sorted target unit names reachable from the
// given source unit.
func AvailableTargets(from string) []string {
	key := strings.ToLower(from)
	var targets []string
	for p := range table {
		if p.from == key {
			targets = append(targets, p.to)
		}
	}
	sort.Strings(targets)
	return targets
}
