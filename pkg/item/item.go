package item

import (
	"fmt"
	"strings"
)

// Item is a named data record: an identifier, an optional numeric value,
// an optional string value, and an optional unit for the numeric value.
type Item struct {
	ID           string   `json:"id"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	StringValue  string   `json:"string_value,omitempty"`
	Unit         string   `json:"unit,omitempty"`
}

// Field names resolvable from an item.
const (
	FieldValue = "value"
	FieldUnit  = "unit"
	FieldName  = "name"
)

// Value is the raw field content extracted from an item. Exactly one of
// Number/Text is meaningful: Number is non-nil for numeric values, Text
// carries string values and the unit/name fields.
type Value struct {
	Number *float64
	Text   string
	Unit   string
}

// IsNumeric reports whether the value carries a number rather than text.
func (v Value) IsNumeric() bool {
	return v.Number != nil
}

// Store holds an ordered, immutable collection of items keyed by
// case-insensitive ID. It is built once and is safe for concurrent reads.
type Store struct {
	items []Item
	index map[string]int
}

// NewStore builds a store from the given items. It fails if an item has an
// empty ID or if two items share an ID (case-insensitive comparison).
func NewStore(items []Item) (*Store, error) {
	s := &Store{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(s.items, items)

	for i, it := range s.items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: id is required", i)
		}
		key := strings.ToLower(it.ID)
		if prev, ok := s.index[key]; ok {
			return nil, fmt.Errorf("duplicate item id %q (items %d and %d)", it.ID, prev, i)
		}
		s.index[key] = i
	}

	return s, nil
}

// Len returns the number of items in the store.
func (s *Store) Len() int {
	return len(s.items)
}

// Resolve looks up an item by case-insensitive ID and returns a copy.
func (s *Store) Resolve(id string) (Item, bool) {
	i, ok := s.index[strings.ToLower(id)]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Field extracts the named field from an item. Field names are matched
// case-insensitively. The "value" field resolves to the string value when
// non-empty, otherwise the numeric value; if neither is set the lookup
// misses. "unit" and "name" resolve to their text form.
func Field(it Item, field string) (Value, bool) {
	switch strings.ToLower(field) {
	case FieldValue:
		if it.StringValue != "" {
			return Value{Text: it.StringValue, Unit: it.Unit}, true
		}
		if it.NumericValue != nil {
			n := *it.NumericValue
			return Value{Number: &n, Unit: it.Unit}, true
		}
		return Value{}, false
	case FieldUnit:
		if it.Unit == "" {
			return Value{}, false
		}
		return Value{Text: it.Unit}, true
	case FieldName:
		return Value{Text: it.ID}, true
	default:
		return Value{}, false
	}
}

// Snapshot returns an ordered copy of all items for diagnostics.
func (s *Store) Snapshot() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}
