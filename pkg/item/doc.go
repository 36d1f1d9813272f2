// Package item defines the data items templates resolve against and the
// store that holds them.
//
// An item is a named record with an optional numeric value, an optional
// string value, and an optional unit. Items are supplied wholesale when the
// store is built and never mutated afterwards, so a store is safe for
// concurrent reads.
//
// Example usage:
//
//	speed := 100.0
//	store, err := item.NewStore([]item.Item{
//	    {ID: "speed", NumericValue: &speed, Unit: "km/h"},
//	    {ID: "driver", StringValue: "Ada"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	it, ok := store.Resolve("SPEED") // lookup is case-insensitive
//	val, ok := item.Field(it, "value")
//
// Field resolution rules:
//   - value: string value if non-empty, else numeric value, else a miss
//   - unit: the unit string, a miss when empty
//   - name: the item ID
package item
